// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

// App runs an [AppShell] under a [UI] until the user quits or the process
// receives an interrupt.
type App struct {
	shell *AppShell
	ui    UI

	logger *logger.Logger
}

func NewApp(shell *AppShell, ui UI, logger *logger.Logger) (*App, error) {
	if shell == nil || ui == nil {
		return nil, errors.New("client app needs a shell and a ui")
	}
	return &App{shell: shell, ui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.shell.Start(ctx)
	defer a.shell.Close()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("ui stopped: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
