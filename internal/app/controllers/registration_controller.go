package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/app/services"
	"github.com/oguzk/campusreg/internal/middleware"
)

// RegistrationController handles registration workflows
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// CreateRegistration registers a registrant for a course
// @Summary Register for a course
// @Description Creates a registration binding the registrant to the course. Fails with
// @Description 404 when the course does not exist and 409 when the course is at capacity
// @Description or the registrant already holds an active registration.
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.CreateRegistrationRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegistrationResponse} "Registration created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course full or already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [post]
func (c *RegistrationController) CreateRegistration(ctx *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	reg, err := c.registrationService.Register(ctx, req.CourseCode, req.Name, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromRegistration(reg)))
}

// GetRegistrationByID retrieves a registration by its identifier
// @Summary Get registration by ID
// @Description Retrieves a specific registration by its UUID
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationResponse} "Registration retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration ID"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id} [get]
func (c *RegistrationController) GetRegistrationByID(ctx *gin.Context) {
	reg, err := c.registrationService.GetRegistration(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromRegistration(reg)))
}

// ListRegistrations retrieves a registrant's active registrations
// @Summary List a registrant's registrations
// @Description Retrieves all active registrations for the given registrant email
// @Tags registrations
// @Accept json
// @Produce json
// @Param email query string true "Registrant email"
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationListResponse} "Registrations retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing email query parameter")
		errorDetail = errorDetail.WithField("email")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	regs, err := c.registrationService.ListRegistrations(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RegistrationListResponse{
		Registrations: dto.FromRegistrations(regs),
	}))
}

// CancelRegistration cancels a registration
// @Summary Cancel a registration
// @Description Cancels an active registration, releasing its seat
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID" format(uuid)
// @Success 204 "Registration cancelled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration ID"
// @Failure 404 {object} dto.ErrorResponse "Registration not found or already cancelled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) CancelRegistration(ctx *gin.Context) {
	if err := c.registrationService.CancelRegistration(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
