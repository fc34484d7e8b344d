package main

import (
	"os"

	"github.com/oguzk/campusreg/internal/bootstrap"
	"github.com/oguzk/campusreg/internal/frontend"
	"github.com/oguzk/campusreg/internal/pkg/logger"
	"github.com/oguzk/campusreg/internal/server"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize configuration")
		os.Exit(1)
	}

	router := frontend.SetupRouter(cfg, lgr)

	srv := server.New("frontend", cfg.Frontend.Port, router, lgr)
	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	lgr.Info().Msg("Frontend finished gracefully.")
}
