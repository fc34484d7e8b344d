package main

import (
	"os"

	"github.com/oguzk/campusreg/internal/bootstrap"
	"github.com/oguzk/campusreg/internal/pkg/logger"
	"github.com/oguzk/campusreg/internal/server"
)

// @title CampusReg Registration API
// @version 1.0
// @description REST API for course registration: course catalog management and seat registration.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Failed to setup dependencies")
		os.Exit(1)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	srv := server.New("registrar", cfg.Registrar.Port, router, lgr, func() {
		lgr.Info().Msg("Closing database connection pool...")
		dbPool.Close()
		lgr.Info().Msg("Database connection pool closed.")
	})

	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	lgr.Info().Msg("Registration service finished gracefully.")
}
