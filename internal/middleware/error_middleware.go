package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers delegate
// every non-binding error here so the status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case apperrors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))

	case apperrors.Is(err, apperrors.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Registration not found")))

	case errors.Is(err, apperrors.ErrRegistrationCancelled):
		// A cancelled registration no longer appears in listings, so a second
		// cancel behaves like an unknown registration
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Registration has already been cancelled")))

	case apperrors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))

	case apperrors.Is(err, apperrors.ErrCourseAlreadyExists, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Course with this code already exists")))

	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Registrant already holds an active registration for this course")))

	case errors.Is(err, apperrors.ErrCourseFull):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Course capacity is full")))

	case errors.Is(err, apperrors.ErrCapacityBelowEnrollment):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Capacity cannot be lowered below the current enrollment")))

	case apperrors.Is(err, apperrors.ErrCourseHasRegistrations, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, err.Error())))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
