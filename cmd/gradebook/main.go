package main

import (
	"context"
	"os"

	"github.com/yigit/gradebook/internal/app/repositories"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/bootstrap"
	"github.com/yigit/gradebook/internal/menu"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	// Storage unavailable at startup is fatal
	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize storage")
		os.Exit(1)
	}

	repos := repositories.NewRepositories(dbPool)
	svcs := services.NewServices(repos)

	m := menu.New(svcs, os.Stdin, os.Stdout)
	runErr := m.Run(context.Background())

	// The pool is released on every exit path before the process ends
	dbPool.Close()

	if runErr != nil {
		logger.Error().Err(runErr).Msg("Menu loop failed")
		os.Exit(1)
	}
}
