// Package services holds the business logic between the HTTP controllers and
// the repositories.
//
// Services defined in this package:
//   - CourseService: administrative course catalog operations
//   - RegistrationService: registration and cancellation workflows
package services
