package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/campusreg/internal/app/models/dto"
)

// HealthController reports service liveness and database reachability
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{db: db}
}

// Health reports service health
// @Summary Health check
// @Description Reports liveness and database reachability
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "Service is healthy"
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUpstreamUnavailable, "Database unreachable")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
}
