package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-eightball/internal/config"
	"github.com/MKhiriev/go-eightball/internal/devserver"
	"github.com/MKhiriev/go-eightball/internal/handler/http"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("eightball-devserver")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	fixtures, err := devserver.LoadFixtures(cfg.FixturesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading fixtures")
	}

	backend := devserver.NewBackend(fixtures, cfg.Version)
	handler := http.NewHandler(backend, cfg.RequireSession, log)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
