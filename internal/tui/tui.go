// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the dream journal in the terminal with Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/client"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Shell is the client state the UI renders. *client.AppShell implements it.
type Shell interface {
	Locked() bool
	Unlock(ctx context.Context, pin string) bool
	Lock(ctx context.Context)
	PinEnabled(ctx context.Context) bool
	SetPin(ctx context.Context, pin, confirm string) error
	DisablePin(ctx context.Context, pin string) error

	CurrentUser() (models.User, bool)
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, username string) error
	SignOut(ctx context.Context) error

	ReloadDreams(ctx context.Context)
	SetFilter(ctx context.Context, filter models.DreamFilter)
	Filter() models.DreamFilter
	Dreams() []models.Dream
	SharedWithMe() []models.SharedDream
	IsShared(dreamID string) bool
	GetDream(ctx context.Context, dreamID string) (models.Dream, bool)
	SaveDream(ctx context.Context, dream models.Dream) (models.Dream, error)
	DeleteDream(ctx context.Context, dreamID string) error

	ShareableUsers(ctx context.Context) []models.ShareableUser
	Share(ctx context.Context, dreamID, targetUserID string) error
	Unshare(ctx context.Context, dreamID, targetUserID string) error

	UnreadCount() int
	OpenNotifications(ctx context.Context) []models.NotificationView

	DarkMode(ctx context.Context) bool
	ToggleTheme(ctx context.Context) bool
	ServerVersion(ctx context.Context) (string, bool)
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) (models.ImportResult, error)

	DrainToasts() []client.Toast
	Changed() <-chan struct{}
}

type TUI struct {
	shell     Shell
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(shell Shell, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if shell == nil {
		return nil, errors.New("tui needs a shell")
	}
	return &TUI{shell: shell, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.shell, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("ui stopped with error")
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
