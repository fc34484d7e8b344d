package controllers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

func sampleRegistration() *models.Registration {
	return &models.Registration{
		ID:        uuid.MustParse("7f8c9d2e-1a2b-4c3d-8e9f-0a1b2c3d4e5f"),
		Status:    models.RegistrationActive,
		CreatedAt: time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		Course:    sampleCourse(),
		Registrant: &models.Registrant{
			Name:  "Alice Example",
			Email: "alice@example.com",
		},
	}
}

func TestCreateRegistration(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		registerFn: func(_ context.Context, courseCode, name, email string) (*models.Registration, error) {
			require.Equal(t, "CS101", courseCode)
			require.Equal(t, "Alice Example", name)
			require.Equal(t, "alice@example.com", email)
			return sampleRegistration(), nil
		},
	})

	w := doRequest(router, http.MethodPost, "/api/v1/registrations",
		`{"courseCode":"CS101","name":"Alice Example","email":"alice@example.com"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"7f8c9d2e-1a2b-4c3d-8e9f-0a1b2c3d4e5f"`)
	assert.Contains(t, w.Body.String(), `"status":"ACTIVE"`)
}

func TestCreateRegistration_InvalidBody(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		registerFn: func(_ context.Context, _, _, _ string) (*models.Registration, error) {
			t.Fatal("service should not be called on binding failure")
			return nil, nil
		},
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing course code", `{"name":"Alice","email":"alice@example.com"}`},
		{"bad course code", `{"courseCode":"cs-101","name":"Alice","email":"alice@example.com"}`},
		{"bad email", `{"courseCode":"CS101","name":"Alice","email":"not-an-email"}`},
		{"missing name", `{"courseCode":"CS101","email":"alice@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/v1/registrations", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"VAL_001"`)
		})
	}
}

func TestCreateRegistration_CourseFull(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		registerFn: func(_ context.Context, _, _, _ string) (*models.Registration, error) {
			return nil, apperrors.ErrCourseFull
		},
	})

	w := doRequest(router, http.MethodPost, "/api/v1/registrations",
		`{"courseCode":"CS101","name":"Bob Example","email":"bob@example.com"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"RES_003"`)
}

func TestCreateRegistration_AlreadyRegistered(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		registerFn: func(_ context.Context, _, _, _ string) (*models.Registration, error) {
			return nil, apperrors.ErrAlreadyRegistered
		},
	})

	w := doRequest(router, http.MethodPost, "/api/v1/registrations",
		`{"courseCode":"CS101","name":"Alice Example","email":"alice@example.com"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"RES_002"`)
}

func TestCreateRegistration_UnknownCourse(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		registerFn: func(_ context.Context, _, _, _ string) (*models.Registration, error) {
			return nil, apperrors.ErrCourseNotFound
		},
	})

	w := doRequest(router, http.MethodPost, "/api/v1/registrations",
		`{"courseCode":"CS999","name":"Alice Example","email":"alice@example.com"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"RES_001"`)
}

func TestGetRegistrationByID(t *testing.T) {
	reg := sampleRegistration()
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		getFn: func(_ context.Context, id string) (*models.Registration, error) {
			require.Equal(t, reg.ID.String(), id)
			return reg, nil
		},
	})

	w := doRequest(router, http.MethodGet, "/api/v1/registrations/"+reg.ID.String(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"courseCode":"CS101"`)
	assert.Contains(t, w.Body.String(), `"email":"alice@example.com"`)
}

func TestGetRegistrationByID_BadID(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		getFn: func(_ context.Context, id string) (*models.Registration, error) {
			return nil, apperrors.NewBadRequestError("registration ID must be a valid UUID")
		},
	})

	w := doRequest(router, http.MethodGet, "/api/v1/registrations/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"VAL_001"`)
}

func TestListRegistrations(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		listFn: func(_ context.Context, email string) ([]*models.Registration, error) {
			require.Equal(t, "alice@example.com", email)
			return []*models.Registration{sampleRegistration()}, nil
		},
	})

	w := doRequest(router, http.MethodGet, "/api/v1/registrations?email=alice@example.com", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registrations"`)
	assert.Contains(t, w.Body.String(), `"courseCode":"CS101"`)
}

func TestListRegistrations_MissingEmail(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{})

	w := doRequest(router, http.MethodGet, "/api/v1/registrations", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"email"`)
}

func TestCancelRegistration(t *testing.T) {
	reg := sampleRegistration()
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		cancelFn: func(_ context.Context, id string) error {
			require.Equal(t, reg.ID.String(), id)
			return nil
		},
	})

	w := doRequest(router, http.MethodDelete, "/api/v1/registrations/"+reg.ID.String(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCancelRegistration_AlreadyCancelled(t *testing.T) {
	router := setupTestRouter(t, &stubCourseService{}, &stubRegistrationService{
		cancelFn: func(_ context.Context, _ string) error {
			return apperrors.ErrRegistrationCancelled
		},
	})

	w := doRequest(router, http.MethodDelete, "/api/v1/registrations/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"RES_001"`)
}
