package main

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/campusreg/internal/bootstrap"
	"github.com/oguzk/campusreg/internal/edge"
	"github.com/oguzk/campusreg/internal/pkg/logger"
	"github.com/oguzk/campusreg/internal/server"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize configuration")
		os.Exit(1)
	}

	if strings.ToLower(cfg.Edge.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := edge.SetupRouter(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup edge routing table")
		os.Exit(1)
	}

	srv := server.New("edge", cfg.Edge.Port, router, lgr)
	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	lgr.Info().Msg("Edge proxy finished gracefully.")
}
