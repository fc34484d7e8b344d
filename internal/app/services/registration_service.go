package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

// RegistrationStore is the repository surface the registration service depends on.
// Satisfied by *repositories.RegistrationRepository.
type RegistrationStore interface {
	Create(ctx context.Context, courseCode, name, email string) (*models.Registration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Registration, error)
	ListActiveByEmail(ctx context.Context, email string) ([]*models.Registration, error)
	ListActiveByCourse(ctx context.Context, courseCode string) ([]*models.Registration, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

// RegistrationService handles registration workflows
type RegistrationService interface {
	Register(ctx context.Context, courseCode, name, email string) (*models.Registration, error)
	GetRegistration(ctx context.Context, id string) (*models.Registration, error)
	ListRegistrations(ctx context.Context, email string) ([]*models.Registration, error)
	CourseRoster(ctx context.Context, courseCode string) ([]*models.Registration, error)
	CancelRegistration(ctx context.Context, id string) error
}

type registrationService struct {
	registrationRepo RegistrationStore
	courseRepo       CourseStore
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(registrationRepo RegistrationStore, courseRepo CourseStore) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		courseRepo:       courseRepo,
	}
}

// Register creates a registration for the given course. The repository
// enforces the capacity invariant; a failed write surfaces to the caller
// directly, there is no retry.
func (s *registrationService) Register(ctx context.Context, courseCode, name, email string) (*models.Registration, error) {
	courseCode = strings.TrimSpace(courseCode)
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if !IsValidCourseCode(courseCode) {
		return nil, fmt.Errorf("%w: invalid course code", apperrors.ErrValidationFailed)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", apperrors.ErrValidationFailed)
	}

	reg, err := s.registrationRepo.Create(ctx, courseCode, name, email)
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// GetRegistration retrieves a registration by its string identifier
func (s *registrationService) GetRegistration(ctx context.Context, id string) (*models.Registration, error) {
	regID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewBadRequestError("registration ID must be a valid UUID")
	}

	reg, err := s.registrationRepo.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// ListRegistrations retrieves a registrant's active registrations by email
func (s *registrationService) ListRegistrations(ctx context.Context, email string) ([]*models.Registration, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}

	regs, err := s.registrationRepo.ListActiveByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}

	return regs, nil
}

// CourseRoster retrieves the active registrations for a course.
// An unknown course yields a not-found error rather than an empty roster.
func (s *registrationService) CourseRoster(ctx context.Context, courseCode string) ([]*models.Registration, error) {
	courseCode = strings.TrimSpace(courseCode)
	if courseCode == "" {
		return nil, fmt.Errorf("%w: course code is required", apperrors.ErrValidationFailed)
	}

	if _, err := s.courseRepo.GetByCode(ctx, courseCode); err != nil {
		return nil, err
	}

	regs, err := s.registrationRepo.ListActiveByCourse(ctx, courseCode)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course roster: %w", err)
	}

	return regs, nil
}

// CancelRegistration cancels a registration, releasing its seat
func (s *registrationService) CancelRegistration(ctx context.Context, id string) error {
	regID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NewBadRequestError("registration ID must be a valid UUID")
	}

	if err := s.registrationRepo.Cancel(ctx, regID); err != nil {
		return err
	}
	return nil
}
