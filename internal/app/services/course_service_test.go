package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

type stubCourseStore struct {
	courses map[string]*models.Course
}

func newStubCourseStore() *stubCourseStore {
	return &stubCourseStore{courses: make(map[string]*models.Course)}
}

func (s *stubCourseStore) Create(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.Code]; ok {
		return apperrors.ErrCourseAlreadyExists
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	cp := *course
	s.courses[course.Code] = &cp
	return nil
}

func (s *stubCourseStore) GetByCode(_ context.Context, code string) (*models.Course, error) {
	course, ok := s.courses[code]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *course
	return &cp, nil
}

func (s *stubCourseStore) List(_ context.Context, _ repositories.ListCoursesParams) ([]*models.Course, int64, error) {
	out := make([]*models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		cp := *c
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (s *stubCourseStore) Update(_ context.Context, course *models.Course) error {
	existing, ok := s.courses[course.Code]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if course.Capacity < existing.ActiveRegistrations {
		return apperrors.ErrCapacityBelowEnrollment
	}
	course.CreatedAt = existing.CreatedAt
	course.UpdatedAt = time.Now()
	course.ActiveRegistrations = existing.ActiveRegistrations
	cp := *course
	s.courses[course.Code] = &cp
	return nil
}

func (s *stubCourseStore) Delete(_ context.Context, code string) error {
	existing, ok := s.courses[code]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if existing.ActiveRegistrations > 0 {
		return apperrors.ErrCourseHasRegistrations
	}
	delete(s.courses, code)
	return nil
}

func TestCreateCourse(t *testing.T) {
	store := newStubCourseStore()
	svc := NewCourseService(store)
	ctx := context.Background()

	err := svc.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro to CS", Capacity: 30})
	require.NoError(t, err)

	course, err := svc.GetCourseByCode(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.Code)
	assert.Equal(t, 30, course.Capacity)
}

func TestCreateCourse_Duplicate(t *testing.T) {
	store := newStubCourseStore()
	svc := NewCourseService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro to CS", Capacity: 30}))

	err := svc.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro again", Capacity: 10})
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
}

func TestCreateCourse_Invalid(t *testing.T) {
	svc := NewCourseService(newStubCourseStore())
	ctx := context.Background()

	tests := []struct {
		name   string
		course *models.Course
	}{
		{"nil course", nil},
		{"lowercase code", &models.Course{Code: "cs101", Name: "Intro", Capacity: 10}},
		{"missing digits", &models.Course{Code: "CS", Name: "Intro", Capacity: 10}},
		{"missing letters", &models.Course{Code: "101", Name: "Intro", Capacity: 10}},
		{"empty name", &models.Course{Code: "CS101", Name: "  ", Capacity: 10}},
		{"negative capacity", &models.Course{Code: "CS101", Name: "Intro", Capacity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateCourse(ctx, tt.course)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestIsValidCourseCode(t *testing.T) {
	assert.True(t, IsValidCourseCode("CS101"))
	assert.True(t, IsValidCourseCode("MATH2001"))
	assert.True(t, IsValidCourseCode("A1"))
	assert.False(t, IsValidCourseCode(""))
	assert.False(t, IsValidCourseCode("CS"))
	assert.False(t, IsValidCourseCode("101"))
	assert.False(t, IsValidCourseCode("cs101"))
	assert.False(t, IsValidCourseCode("CS101B"))
}

func TestGetCourseByCode_NotFound(t *testing.T) {
	svc := NewCourseService(newStubCourseStore())

	_, err := svc.GetCourseByCode(context.Background(), "CS999")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCourseByCode_EmptyCode(t *testing.T) {
	svc := NewCourseService(newStubCourseStore())

	_, err := svc.GetCourseByCode(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCourse(t *testing.T) {
	store := newStubCourseStore()
	svc := NewCourseService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro to CS", Capacity: 30}))

	updated := &models.Course{Code: "CS101", Name: "Introduction to Computer Science", Capacity: 45}
	require.NoError(t, svc.UpdateCourse(ctx, updated))

	assert.False(t, updated.CreatedAt.IsZero())
	assert.False(t, updated.UpdatedAt.IsZero())

	course, err := svc.GetCourseByCode(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Computer Science", course.Name)
	assert.Equal(t, 45, course.Capacity)
}

func TestUpdateCourse_CapacityBelowEnrollment(t *testing.T) {
	store := newStubCourseStore()
	svc := NewCourseService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro to CS", Capacity: 30}))
	store.courses["CS101"].ActiveRegistrations = 5

	err := svc.UpdateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro to CS", Capacity: 3})
	assert.ErrorIs(t, err, apperrors.ErrCapacityBelowEnrollment)
}

func TestDeleteCourse_HasRegistrations(t *testing.T) {
	store := newStubCourseStore()
	svc := NewCourseService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro to CS", Capacity: 30}))
	store.courses["CS101"].ActiveRegistrations = 1

	err := svc.DeleteCourse(ctx, "CS101")
	assert.ErrorIs(t, err, apperrors.ErrCourseHasRegistrations)
}

func TestDeleteCourse(t *testing.T) {
	store := newStubCourseStore()
	svc := NewCourseService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro to CS", Capacity: 30}))
	require.NoError(t, svc.DeleteCourse(ctx, "CS101"))

	_, err := svc.GetCourseByCode(ctx, "CS101")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
