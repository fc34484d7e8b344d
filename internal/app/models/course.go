package models

import "time"

// Course represents a registrable offering with finite capacity.
type Course struct {
	ID          int64     `json:"-" db:"id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"` // Nullable
	Capacity    int       `json:"capacity" db:"capacity"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Populated when needed
	ActiveRegistrations int `json:"-" db:"-"`
}

// SeatsLeft returns the number of seats still available.
func (c *Course) SeatsLeft() int {
	left := c.Capacity - c.ActiveRegistrations
	if left < 0 {
		return 0
	}
	return left
}
