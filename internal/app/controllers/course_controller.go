package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/campusreg/internal/app/models"
	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/app/services"
	"github.com/oguzk/campusreg/internal/middleware"
	"github.com/oguzk/campusreg/internal/pkg/helpers"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService       services.CourseService
	registrationService services.RegistrationService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, registrationService services.RegistrationService) *CourseController {
	return &CourseController{
		courseService:       courseService,
		registrationService: registrationService,
	}
}

// ListCourses retrieves the course catalog
// @Summary List courses
// @Description Retrieves a paginated list of courses, optionally filtered by code or name
// @Tags courses
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Param q query string false "Filter by course code or name"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	courses, total, err := c.courseService.ListCourses(ctx, ctx.Query("q"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseListResponse{
		Courses:    dto.FromCourses(courses),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// GetCourseByCode retrieves a course by its code
// @Summary Get course by code
// @Description Retrieves a specific course by its code, including seat availability
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code" example(CS101)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course)))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course with the provided code, name and capacity
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course := &models.Course{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	}

	if err := c.courseService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromCourse(course)))
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Updates name, description and capacity of an existing course
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code" example(CS101)
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Capacity below current enrollment"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course := &models.Course{
		Code:        ctx.Param("code"),
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	}

	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course)))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes a course that has no active registrations
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code" example(CS101)
// @Success 204 "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course has active registrations"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetCourseRoster retrieves the active registrations for a course
// @Summary Get course roster
// @Description Retrieves all active registrations for a course
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code" example(CS101)
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationListResponse} "Roster retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code}/registrations [get]
func (c *CourseController) GetCourseRoster(ctx *gin.Context) {
	regs, err := c.registrationService.CourseRoster(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RegistrationListResponse{
		Registrations: dto.FromRegistrations(regs),
	}))
}
