// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/handler"
	"github.com/MKhiriev/go-dream-journal/internal/handler/http"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/metrics"
	"github.com/MKhiriev/go-dream-journal/internal/realtime"
	"github.com/MKhiriev/go-dream-journal/internal/server"
	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dream-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Err(err).Msg("error closing repositories")
		}
	}()

	m := metrics.New()
	hub := realtime.NewHub(m, log)

	services, err := service.NewServices(repos, hub, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, repos, cfg.Server, log,
		http.WithRealtime(hub),
		http.WithMetrics(m),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
