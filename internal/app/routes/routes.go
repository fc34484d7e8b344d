package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzk/campusreg/internal/app/controllers"
)

// SetupRouter configures all registration service routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	registrationController *controllers.RegistrationController,
	healthController *controllers.HealthController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:code", courseController.GetCourseByCode)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:code", courseController.UpdateCourse)
		courses.DELETE("/:code", courseController.DeleteCourse)
		courses.GET("/:code/registrations", courseController.GetCourseRoster)
	}

	// Registration routes
	registrations := v1.Group("/registrations")
	{
		registrations.POST("", registrationController.CreateRegistration)
		registrations.GET("", registrationController.ListRegistrations)
		registrations.GET("/:id", registrationController.GetRegistrationByID)
		registrations.DELETE("/:id", registrationController.CancelRegistration)
	}

	// Health check endpoint
	v1.GET("/health", healthController.Health)
}
