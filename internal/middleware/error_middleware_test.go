package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, "VAL_001"},
		{"wrapped validation", fmt.Errorf("%w: bad code", apperrors.ErrValidationFailed), http.StatusBadRequest, "VAL_001"},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, "RES_001"},
		{"registration not found", apperrors.ErrRegistrationNotFound, http.StatusNotFound, "RES_001"},
		{"already cancelled", apperrors.ErrRegistrationCancelled, http.StatusNotFound, "RES_001"},
		{"course exists", apperrors.ErrCourseAlreadyExists, http.StatusConflict, "RES_002"},
		{"already registered", apperrors.ErrAlreadyRegistered, http.StatusConflict, "RES_002"},
		{"course full", apperrors.ErrCourseFull, http.StatusConflict, "RES_003"},
		{"capacity below enrollment", apperrors.ErrCapacityBelowEnrollment, http.StatusConflict, "RES_003"},
		{"has registrations", apperrors.ErrCourseHasRegistrations, http.StatusConflict, "RES_003"},
		{"unknown error", fmt.Errorf("connection reset"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprintf("%q", tt.wantCode))
		})
	}
}

func TestHandleAPIError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, fmt.Errorf("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
