package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/db"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
	"github.com/oguzk/campusreg/internal/pkg/dberrors"
)

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

const selectRegistrationSQL = `
	SELECT r.id, r.course_id, r.registrant_id, r.status, r.created_at, r.cancelled_at,
	       c.code, c.name, c.capacity,
	       p.name, p.email
	FROM registrations r
	JOIN courses c ON c.id = r.course_id
	JOIN registrants p ON p.id = r.registrant_id
`

func scanRegistration(row pgx.Row) (*models.Registration, error) {
	var (
		reg        models.Registration
		course     models.Course
		registrant models.Registrant
	)

	err := row.Scan(
		&reg.ID, &reg.CourseID, &reg.RegistrantID, &reg.Status, &reg.CreatedAt, &reg.CancelledAt,
		&course.Code, &course.Name, &course.Capacity,
		&registrant.Name, &registrant.Email,
	)
	if err != nil {
		return nil, err
	}

	course.ID = reg.CourseID
	registrant.ID = reg.RegistrantID
	reg.Course = &course
	reg.Registrant = &registrant
	return &reg, nil
}

// Create registers a registrant for a course. The whole operation runs in a
// single transaction holding a row lock on the course, so the capacity
// invariant holds under concurrent writers: the (N+1)-th attempt against a
// course with capacity N fails with ErrCourseFull regardless of arrival order.
func (r *RegistrationRepository) Create(ctx context.Context, courseCode, name, email string) (*models.Registration, error) {
	var created *models.Registration

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var (
			course     models.Course
			registrant models.Registrant
		)

		// Serialize concurrent registrations for the same course
		err := tx.QueryRow(ctx,
			`SELECT id, code, name, capacity FROM courses WHERE code = $1 FOR UPDATE`, courseCode).
			Scan(&course.ID, &course.Code, &course.Name, &course.Capacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		var active int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM registrations WHERE course_id = $1 AND status = 'ACTIVE'`, course.ID).Scan(&active)
		if err != nil {
			return fmt.Errorf("error counting registrations: %w", err)
		}

		if active >= course.Capacity {
			return apperrors.ErrCourseFull
		}

		// Registrants have no independent lifecycle; create on demand
		err = tx.QueryRow(ctx, `
			INSERT INTO registrants (name, email)
			VALUES ($1, $2)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id, name, email, created_at
		`, name, email).Scan(&registrant.ID, &registrant.Name, &registrant.Email, &registrant.CreatedAt)
		if err != nil {
			return fmt.Errorf("error upserting registrant: %w", err)
		}

		reg := &models.Registration{
			ID:           uuid.New(),
			CourseID:     course.ID,
			RegistrantID: registrant.ID,
			Status:       models.RegistrationActive,
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO registrations (id, course_id, registrant_id, status)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at
		`, reg.ID, reg.CourseID, reg.RegistrantID, reg.Status).Scan(&reg.CreatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "registrations_active_course_registrant_idx") {
				return apperrors.ErrAlreadyRegistered
			}
			return fmt.Errorf("error creating registration: %w", err)
		}

		course.ActiveRegistrations = active + 1
		reg.Course = &course
		reg.Registrant = &registrant
		created = reg
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID retrieves a registration by its identifier, with course and registrant joined
func (r *RegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	reg, err := scanRegistration(r.db.QueryRow(ctx, selectRegistrationSQL+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving registration: %w", err)
	}

	return reg, nil
}

// ListActiveByEmail retrieves a registrant's active registrations
func (r *RegistrationRepository) ListActiveByEmail(ctx context.Context, email string) ([]*models.Registration, error) {
	rows, err := r.db.Query(ctx,
		selectRegistrationSQL+` WHERE p.email = $1 AND r.status = 'ACTIVE' ORDER BY r.created_at ASC`, email)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations: %w", err)
	}
	defer rows.Close()

	return collectRegistrations(rows)
}

// ListActiveByCourse retrieves the active roster for a course
func (r *RegistrationRepository) ListActiveByCourse(ctx context.Context, courseCode string) ([]*models.Registration, error) {
	rows, err := r.db.Query(ctx,
		selectRegistrationSQL+` WHERE c.code = $1 AND r.status = 'ACTIVE' ORDER BY r.created_at ASC`, courseCode)
	if err != nil {
		return nil, fmt.Errorf("error listing course registrations: %w", err)
	}
	defer rows.Close()

	return collectRegistrations(rows)
}

func collectRegistrations(rows pgx.Rows) ([]*models.Registration, error) {
	var regs []*models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regs, nil
}

// Cancel marks a registration cancelled, releasing its seat.
func (r *RegistrationRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE registrations
		SET status = 'CANCELLED', cancelled_at = NOW()
		WHERE id = $1 AND status = 'ACTIVE'
	`, id)
	if err != nil {
		return fmt.Errorf("error cancelling registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Distinguish unknown from already cancelled
		var status models.RegistrationStatus
		err := r.db.QueryRow(ctx, `SELECT status FROM registrations WHERE id = $1`, id).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrRegistrationNotFound
			}
			return fmt.Errorf("error checking registration: %w", err)
		}
		return apperrors.ErrRegistrationCancelled
	}

	return nil
}
