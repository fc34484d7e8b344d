package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories is a container for all repository instances
type Repositories struct {
	CourseRepository       *CourseRepository
	RegistrationRepository *RegistrationRepository
}

// NewRepositories creates all repositories sharing one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:       NewCourseRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
	}
}
