package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oguzk/campusreg/internal/app/services"
)

// RegisterValidators installs custom validation rules on gin's binding validator.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("coursecode", validCourseCode)
	}
}

// validCourseCode validates the coursecode tag: uppercase letters followed by
// digits, e.g. CS101.
func validCourseCode(fl validator.FieldLevel) bool {
	return services.IsValidCourseCode(fl.Field().String())
}
