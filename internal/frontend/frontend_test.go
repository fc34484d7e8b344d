package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/oguzk/campusreg/internal/config"
)

func newFrontendRouter(t *testing.T, apiBaseURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Frontend.StaticDir = "../../web/public"
	cfg.Frontend.TemplateDir = "../../web/templates"
	cfg.Frontend.APIBaseURL = apiBaseURL

	return SetupRouter(cfg, zerolog.Nop())
}

func TestHealthz(t *testing.T) {
	router := newFrontendRouter(t, "http://localhost:5000")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestIndexPage(t *testing.T) {
	router := newFrontendRouter(t, "http://localhost:5000")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CampusReg")
}

func TestCoursesPage(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"courses": [
					{"code": "CS101", "name": "Intro to CS", "capacity": 30, "registered": 12, "seatsLeft": 18}
				],
				"pagination": {"currentPage": 1, "pageSize": 100, "totalItems": 1, "totalPages": 1}
			},
			"timestamp": "2024-02-01T09:30:00Z"
		}`))
	}))
	defer api.Close()

	router := newFrontendRouter(t, api.URL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CS101")
	assert.Contains(t, w.Body.String(), "Intro to CS")
	assert.Contains(t, w.Body.String(), "18 / 30")
}

func TestCoursesPage_BackendDown(t *testing.T) {
	api := httptest.NewServer(http.NotFoundHandler())
	apiURL := api.URL
	api.Close()

	router := newFrontendRouter(t, apiURL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "temporarily unavailable")
}
