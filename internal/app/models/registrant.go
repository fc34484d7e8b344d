package models

import "time"

// Registrant is the minimal identity attached to a registration.
// Registrants are created on demand when a registration is accepted and
// have no independent lifecycle management.
type Registrant struct {
	ID        int64     `json:"-" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
