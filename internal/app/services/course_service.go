package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

// CourseStore is the repository surface the course service depends on.
// Satisfied by *repositories.CourseRepository.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context, params repositories.ListCoursesParams) ([]*models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, code string) error
}

// CourseService handles course catalog operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	ListCourses(ctx context.Context, query string, page, size int) ([]*models.Course, int64, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, code string) error
}

type courseService struct {
	courseRepo CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore) CourseService {
	return &courseService{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if !IsValidCourseCode(course.Code) {
		return fmt.Errorf("%w: code must be uppercase letters followed by digits", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if course.Capacity < 0 {
		return fmt.Errorf("%w: capacity cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// IsValidCourseCode checks whether a course code has the expected shape:
// uppercase letters followed by digits, e.g. CS101 or MATH2001.
func IsValidCourseCode(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return false
	}

	i := 0
	for ; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			break
		}
	}
	if i == 0 || i == len(code) {
		return false
	}

	for ; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}

	return true
}

// CreateCourse creates a new course
func (s *courseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return err
	}
	return nil
}

// GetCourseByCode retrieves a course by its code
func (s *courseService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: course code is required", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return course, nil
}

// ListCourses retrieves courses matching the given filter
func (s *courseService) ListCourses(ctx context.Context, query string, page, size int) ([]*models.Course, int64, error) {
	courses, total, err := s.courseRepo.List(ctx, repositories.ListCoursesParams{
		Query: strings.TrimSpace(query),
		Page:  page,
		Size:  size,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, total, nil
}

// UpdateCourse updates an existing course identified by its code
func (s *courseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return err
	}
	return nil
}

// DeleteCourse deletes a course by its code
func (s *courseService) DeleteCourse(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: course code is required", apperrors.ErrValidationFailed)
	}

	if err := s.courseRepo.Delete(ctx, code); err != nil {
		return err
	}
	return nil
}
