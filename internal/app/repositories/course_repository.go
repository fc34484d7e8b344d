package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/db"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
	"github.com/oguzk/campusreg/internal/pkg/dberrors"
	"github.com/oguzk/campusreg/internal/pkg/helpers"
)

// ListCoursesParams holds parameters for filtering and pagination.
type ListCoursesParams struct {
	Query string // Matches course code or name, case-insensitive
	Page  int
	Size  int
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// selectCoursesQuery builds the base select with the active registration count joined in.
func (r *CourseRepository) selectCoursesQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.code", "c.name", "c.description", "c.capacity",
		"c.created_at", "c.updated_at",
		"COUNT(reg.id) FILTER (WHERE reg.status = 'ACTIVE') AS active_registrations",
	).From("courses c").
		LeftJoin("registrations reg ON reg.course_id = c.id").
		GroupBy("c.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Description,
		&course.Capacity,
		&course.CreatedAt,
		&course.UpdatedAt,
		&course.ActiveRegistrations,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, description, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, course.Code, course.Name, course.Description, course.Capacity).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByCode retrieves a course by its code, including the active registration count
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	sql, args, err := r.selectCoursesQuery().Where(squirrel.Eq{"c.code": code}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// List retrieves courses matching the given filter, with pagination.
// Returns the page of courses and the total number of matches.
func (r *CourseRepository) List(ctx context.Context, params ListCoursesParams) ([]*models.Course, int64, error) {
	builder := r.selectCoursesQuery().OrderBy("c.code ASC")
	countBuilder := squirrel.Select("COUNT(*)").From("courses c").PlaceholderFormat(squirrel.Dollar)

	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		filter := squirrel.Or{
			squirrel.ILike{"c.code": pattern},
			squirrel.ILike{"c.name": pattern},
		}
		builder = builder.Where(filter)
		countBuilder = countBuilder.Where(filter)
	}

	var total int64
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building course count query: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	builder = builder.Limit(uint64(limit)).Offset(offset)

	listSQL, listArgs, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building course list query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// Update updates a course's name, description and capacity.
// The capacity may not drop below the current number of active registrations;
// the check runs inside a transaction holding the course row lock so it stays
// correct under concurrent registration writers.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM courses WHERE code = $1 FOR UPDATE`, course.Code).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		var active int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM registrations WHERE course_id = $1 AND status = 'ACTIVE'`, id).Scan(&active)
		if err != nil {
			return fmt.Errorf("error counting registrations: %w", err)
		}

		if course.Capacity < active {
			return apperrors.ErrCapacityBelowEnrollment
		}

		err = tx.QueryRow(ctx, `
			UPDATE courses
			SET name = $1, description = $2, capacity = $3, updated_at = NOW()
			WHERE id = $4
			RETURNING created_at, updated_at
		`, course.Name, course.Description, course.Capacity, id).
			Scan(&course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error updating course: %w", err)
		}

		course.ID = id
		course.ActiveRegistrations = active
		return nil
	})
}

// Delete deletes a course by code. A course with active registrations cannot
// be deleted; cancelled registration history is removed by the FK cascade.
func (r *CourseRepository) Delete(ctx context.Context, code string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM courses WHERE code = $1 FOR UPDATE`, code).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		var hasActive bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM registrations WHERE course_id = $1 AND status = 'ACTIVE')`, id).Scan(&hasActive)
		if err != nil {
			return fmt.Errorf("error checking registrations: %w", err)
		}

		if hasActive {
			return apperrors.ErrCourseHasRegistrations
		}

		if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}

		return nil
	})
}
