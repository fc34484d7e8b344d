// Package edge implements the single ingress point of the system: a static
// path-prefix routing table in front of the web frontend and the registration
// service. Requests are forwarded unchanged and upstream responses are
// returned unchanged; an unreachable upstream yields a gateway error.
package edge

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/config"
	"github.com/oguzk/campusreg/internal/middleware"
	"github.com/oguzk/campusreg/internal/pkg/helpers"
)

// Routing table: path prefixes served by the registration service; everything
// else goes to the frontend.
var registrarPrefixes = []string{"/api", "/swagger"}

// NewUpstreamProxy creates a reverse proxy to the given upstream with an
// error handler that surfaces upstream failures as 502 responses.
func NewUpstreamProxy(name string, target *url.URL, timeout time.Duration, lgr zerolog.Logger) *httputil.ReverseProxy {
	proxy := httputil.NewSingleHostReverseProxy(target)

	proxy.Transport = &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).DialContext,
		ResponseHeaderTimeout: timeout,
		MaxIdleConnsPerHost:   16,
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		lgr.Error().Err(err).
			Str("upstream", name).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Upstream request failed")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		resp := dto.NewErrorResponse(dto.NewErrorDetail(
			dto.ErrorCodeUpstreamUnavailable,
			fmt.Sprintf("Upstream %s is unavailable", name),
		))
		_ = json.NewEncoder(w).Encode(resp)
	}

	return proxy
}

// SetupRouter builds the edge routing table from configuration.
func SetupRouter(cfg *config.Config, lgr zerolog.Logger) (*gin.Engine, error) {
	registrarURL, err := url.Parse(cfg.Edge.RegistrarURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registrar upstream URL: %w", err)
	}

	frontendURL, err := url.Parse(cfg.Edge.FrontendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid frontend upstream URL: %w", err)
	}

	timeout := helpers.ParseDuration(cfg.Edge.UpstreamTimeout, 30*time.Second)

	registrarProxy := NewUpstreamProxy("registrar", registrarURL, timeout, lgr)
	frontendProxy := NewUpstreamProxy("frontend", frontendURL, timeout, lgr)

	router := gin.New()
	router.Use(middleware.RequestLogger(lgr), gin.Recovery())

	forward := func(proxy *httputil.ReverseProxy) gin.HandlerFunc {
		return func(c *gin.Context) {
			proxy.ServeHTTP(c.Writer, c.Request)
		}
	}

	for _, prefix := range registrarPrefixes {
		router.Any(prefix+"/*any", forward(registrarProxy))
	}

	// Everything not matched above is a frontend page or asset
	router.NoRoute(forward(frontendProxy))

	return router, nil
}
