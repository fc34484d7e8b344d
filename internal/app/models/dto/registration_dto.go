package dto

import (
	"time"

	"github.com/oguzk/campusreg/internal/app/models"
)

// CreateRegistrationRequest represents a registration request for a course
type CreateRegistrationRequest struct {
	CourseCode string `json:"courseCode" binding:"required,coursecode"`
	Name       string `json:"name" binding:"required,min=2,max=200"`
	Email      string `json:"email" binding:"required,email"`
}

// RegistrationResponse represents the response for a registration
type RegistrationResponse struct {
	ID          string     `json:"id" example:"7f8c9d2e-1a2b-4c3d-8e9f-0a1b2c3d4e5f"`
	CourseCode  string     `json:"courseCode" example:"CS101"`
	CourseName  string     `json:"courseName,omitempty" example:"Introduction to Computer Science"`
	Name        string     `json:"name" example:"Alice Example"`
	Email       string     `json:"email" example:"alice@example.com"`
	Status      string     `json:"status" example:"ACTIVE"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// RegistrationListResponse represents a registrant's registrations
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}

// FromRegistration converts a models.Registration to a RegistrationResponse
func FromRegistration(reg *models.Registration) RegistrationResponse {
	if reg == nil {
		return RegistrationResponse{}
	}

	resp := RegistrationResponse{
		ID:          reg.ID.String(),
		Status:      string(reg.Status),
		CreatedAt:   reg.CreatedAt,
		CancelledAt: reg.CancelledAt,
	}

	if reg.Course != nil {
		resp.CourseCode = reg.Course.Code
		resp.CourseName = reg.Course.Name
	}
	if reg.Registrant != nil {
		resp.Name = reg.Registrant.Name
		resp.Email = reg.Registrant.Email
	}

	return resp
}

// FromRegistrations converts a slice of registrations
func FromRegistrations(regs []*models.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, FromRegistration(reg))
	}
	return out
}
