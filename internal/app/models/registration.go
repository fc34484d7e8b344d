package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration binds one registrant to one course.
type Registration struct {
	ID           uuid.UUID          `json:"id" db:"id"`
	CourseID     int64              `json:"-" db:"course_id"`
	RegistrantID int64              `json:"-" db:"registrant_id"`
	Status       RegistrationStatus `json:"status" db:"status"`
	CreatedAt    time.Time          `json:"createdAt" db:"created_at"`
	CancelledAt  *time.Time         `json:"cancelledAt,omitempty" db:"cancelled_at"` // Nullable

	// Relations (populated when needed)
	Course     *Course     `json:"course,omitempty"`
	Registrant *Registrant `json:"registrant,omitempty"`
}

// IsActive reports whether the registration still holds a seat.
func (r *Registration) IsActive() bool {
	return r.Status == RegistrationActive
}
