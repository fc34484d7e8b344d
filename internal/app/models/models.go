package models

// RegistrationStatus represents the lifecycle state of a registration
type RegistrationStatus string

const (
	// RegistrationActive is a registration that currently holds a seat
	RegistrationActive RegistrationStatus = "ACTIVE"
	// RegistrationCancelled is a registration whose seat has been released
	RegistrationCancelled RegistrationStatus = "CANCELLED"
)

// IsValid checks whether the status is one of the known values
func (s RegistrationStatus) IsValid() bool {
	return s == RegistrationActive || s == RegistrationCancelled
}
