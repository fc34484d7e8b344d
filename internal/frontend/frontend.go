// Package frontend serves the static web assets and the server-rendered
// course catalog page. Registration state always comes from the registration
// service; the frontend itself keeps no state between requests.
package frontend

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/config"
	"github.com/oguzk/campusreg/internal/middleware"
	"github.com/oguzk/campusreg/internal/pkg/helpers"
	"github.com/oguzk/campusreg/internal/webclient"
)

// Handlers holds the frontend request handlers.
type Handlers struct {
	client *webclient.Client
	logger zerolog.Logger
}

// NewHandlers creates frontend handlers backed by the given API client.
func NewHandlers(client *webclient.Client, lgr zerolog.Logger) *Handlers {
	return &Handlers{
		client: client,
		logger: lgr,
	}
}

// coursesPageData is the template payload for the catalog page.
type coursesPageData struct {
	Courses []dto.CourseResponse
	Error   string
}

// CoursesPage renders the server-side course catalog. A backend failure
// degrades to an error banner; there is no caching or retry.
func (h *Handlers) CoursesPage(c *gin.Context) {
	catalog, err := h.client.ListCourses(c.Request.Context(), 1, helpers.MaxPageSize)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load course catalog from registration service")
		c.HTML(http.StatusBadGateway, "courses.tmpl", coursesPageData{
			Error: "The course catalog is temporarily unavailable. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "courses.tmpl", coursesPageData{
		Courses: catalog.Courses,
	})
}

// Healthz reports frontend liveness.
func (h *Handlers) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetupRouter configures the frontend engine: static assets, the rendered
// catalog page and the health endpoint.
func SetupRouter(cfg *config.Config, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Frontend.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(lgr), gin.Recovery())

	router.LoadHTMLGlob(filepath.Join(cfg.Frontend.TemplateDir, "*.tmpl"))

	client := webclient.New(cfg.Frontend.APIBaseURL, 10*time.Second)
	handlers := NewHandlers(client, lgr)

	router.StaticFile("/", filepath.Join(cfg.Frontend.StaticDir, "index.html"))
	router.Static("/assets", filepath.Join(cfg.Frontend.StaticDir, "assets"))

	router.GET("/courses", handlers.CoursesPage)
	router.GET("/healthz", handlers.Healthz)

	return router
}
