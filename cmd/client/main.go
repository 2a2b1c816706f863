// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/client"
	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/internal/tui"
	"github.com/MKhiriev/go-dream-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("dream-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	realtime, err := adapter.NewRealtimeSubscriber(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create realtime subscriber")
	}

	services := service.NewClientServices(storages.Settings, serverAdapter, cfg.App, log)
	shell := client.NewAppShell(services, realtime, cfg.Workers, log)

	ui, err := tui.New(shell, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(shell, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
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
