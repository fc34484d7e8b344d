package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Course errors
var (
	ErrCourseNotFound          = errors.New("course not found")
	ErrCourseAlreadyExists     = errors.New("course with this code already exists")
	ErrCourseFull              = errors.New("course capacity is full")
	ErrCourseHasRegistrations  = errors.New("course has active registrations and cannot be deleted")
	ErrCapacityBelowEnrollment = errors.New("capacity cannot be lowered below the current enrollment")
)

// Registration errors
var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrAlreadyRegistered     = errors.New("registrant already holds an active registration for this course")
	ErrRegistrationCancelled = errors.New("registration has already been cancelled")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError attaches a request-specific message to a sentinel error.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
