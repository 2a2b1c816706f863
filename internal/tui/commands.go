// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Commands call the shell off the UI goroutine. The shell queues a toast for
// every failure, so messages carry only what the screens need.

func (m appModel) cmdUnlock(pin string) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return unlockedMsg{ok: shell.Unlock(ctx, pin)}
	}
}

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return authDoneMsg{err: shell.SignIn(ctx, email, password)}
	}
}

func (m appModel) cmdSignUp(email, password, username string) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return authDoneMsg{err: shell.SignUp(ctx, email, password, username)}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		_ = shell.SignOut(ctx)
		return signedOutMsg{}
	}
}

func (m appModel) cmdReload() tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		shell.ReloadDreams(ctx)
		return dreamsReloadedMsg{}
	}
}

func (m appModel) cmdSetFilter(filter models.DreamFilter) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		shell.SetFilter(ctx, filter)
		return dreamsReloadedMsg{}
	}
}

func (m appModel) cmdOpenDream(dreamID string) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		dream, ok := shell.GetDream(ctx, dreamID)
		return dreamLoadedMsg{dream: dream, ok: ok}
	}
}

func (m appModel) cmdSaveDream(dream models.Dream) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		saved, err := shell.SaveDream(ctx, dream)
		return dreamSavedMsg{dream: saved, err: err}
	}
}

func (m appModel) cmdDeleteDream(dreamID string) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return dreamDeletedMsg{err: shell.DeleteDream(ctx, dreamID)}
	}
}

func (m appModel) cmdOpenNotifications() tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return notificationsLoadedMsg{views: shell.OpenNotifications(ctx)}
	}
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return usersLoadedMsg{users: shell.ShareableUsers(ctx)}
	}
}

func (m appModel) cmdShare(dreamID, userID string) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return shareDoneMsg{userID: userID, shared: true, err: shell.Share(ctx, dreamID, userID)}
	}
}

func (m appModel) cmdUnshare(dreamID, userID string) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return shareDoneMsg{userID: userID, shared: false, err: shell.Unshare(ctx, dreamID, userID)}
	}
}

func (m appModel) cmdToggleTheme() tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		return themeToggledMsg{dark: shell.ToggleTheme(ctx)}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		version, ok := shell.ServerVersion(ctx)
		return serverVersionMsg{version: version, ok: ok}
	}
}

func (m appModel) cmdSettings(action settingsAction, first, second string) tea.Cmd {
	ctx, shell := m.ctx, m.shell
	return func() tea.Msg {
		var err error
		switch action {
		case actionSetPin:
			err = shell.SetPin(ctx, first, second)
		case actionDisablePin:
			err = shell.DisablePin(ctx, first)
		case actionExport:
			err = shell.Export(ctx, first)
		case actionImport:
			_, err = shell.Import(ctx, first)
		}
		return settingsDoneMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
