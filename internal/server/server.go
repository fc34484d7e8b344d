package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server wraps an HTTP server with signal-driven graceful shutdown.
// All three binaries (registrar, frontend, edge) run through it.
type Server struct {
	name    string
	router  *gin.Engine
	logger  zerolog.Logger
	http    *http.Server
	cleanup []func()
}

// New creates a server for the given gin engine. Cleanup functions run after
// the HTTP server has stopped, in the order given.
func New(name, port string, router *gin.Engine, lgr zerolog.Logger, cleanup ...func()) *Server {
	return &Server{
		name:   name,
		router: router,
		logger: lgr,
		http: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		cleanup: cleanup,
	}
}

// Run starts the HTTP server and blocks until a shutdown signal or server error.
func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Str("service", s.name).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and runs cleanup functions.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	s.logger.Info().Msg("Shutting down HTTP server...")
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown error")
		shutdownError = true
	} else {
		s.logger.Info().Msg("HTTP server gracefully stopped.")
	}

	for _, fn := range s.cleanup {
		fn()
	}

	s.logger.Info().Str("service", s.name).Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
