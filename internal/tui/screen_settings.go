// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsAction int

const (
	actionNone settingsAction = iota
	actionSetPin
	actionDisablePin
	actionExport
	actionImport
)

type settingsItem int

const (
	itemTheme settingsItem = iota
	itemSetPin
	itemDisablePin
	itemExport
	itemImport
	itemAbout
	itemCount
)

const defaultBackupPath = "dreams.json"

type settingsModel struct {
	idx    settingsItem
	action settingsAction
	input  inputForm
}

func newSettingsModel() settingsModel {
	return settingsModel{}
}

func (s settingsModel) View(st styles, dark, pinEnabled bool) string {
	if s.action != actionNone {
		titles := map[settingsAction]string{
			actionSetPin:     "Set PIN",
			actionDisablePin: "Disable PIN",
			actionExport:     "Export dreams",
			actionImport:     "Import dreams",
		}
		out := s.input.View()
		if s.input.submitting {
			out += "\nworking..."
		}
		return renderPage(st, titles[s.action], out, "tab: next field  enter: confirm  esc: cancel")
	}

	theme := "light"
	if dark {
		theme = "dark"
	}
	pin := "off"
	if pinEnabled {
		pin = "on"
	}
	labels := []string{
		"Theme: " + theme,
		"Set PIN (currently " + pin + ")",
		"Disable PIN",
		"Export to JSON file",
		"Import from JSON file",
		"About",
	}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(cursorMark(st, settingsItem(i) == s.idx) + label + "\n")
	}
	return renderPage(st, "Settings", strings.TrimRight(b.String(), "\n"), "enter: choose  esc: back")
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.settings.action != actionNone {
		return m.updateSettingsInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = screenList
	case key.Matches(keyMsg, keys.up):
		if m.settings.idx > 0 {
			m.settings.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settings.idx < itemCount-1 {
			m.settings.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.settings.idx {
		case itemTheme:
			return m, m.cmdToggleTheme()
		case itemSetPin:
			m.settings.action = actionSetPin
			m.settings.input = newInputForm(
				inputField{label: "New PIN", placeholder: "at least 4 characters", secret: true, charLimit: 64},
				inputField{label: "Repeat", secret: true, charLimit: 64},
			)
		case itemDisablePin:
			m.settings.action = actionDisablePin
			m.settings.input = newInputForm(inputField{label: "PIN", secret: true, charLimit: 64})
		case itemExport:
			m.settings.action = actionExport
			m.settings.input = newInputForm(inputField{label: "File", placeholder: defaultBackupPath})
		case itemImport:
			m.settings.action = actionImport
			m.settings.input = newInputForm(inputField{label: "File", placeholder: defaultBackupPath})
		case itemAbout:
			m.current = screenAbout
			m.serverVersion = "checking..."
			return m, m.cmdServerVersion()
		}
	}
	return m, nil
}

func (m appModel) updateSettingsInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.settings.action = actionNone
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.settings.input = m.settings.input.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.settings.input = m.settings.input.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.settings.input.submitting {
				return m, nil
			}
			first := m.settings.input.value(0)
			second := ""
			if len(m.settings.input.inputs) > 1 {
				second = m.settings.input.value(1)
			}
			if m.settings.action == actionExport || m.settings.action == actionImport {
				first = strings.TrimSpace(first)
				if first == "" {
					first = defaultBackupPath
				}
			}
			m.settings.input.submitting = true
			return m, m.cmdSettings(m.settings.action, first, second)
		}
	}

	var cmd tea.Cmd
	m.settings.input, cmd = m.settings.input.update(msg)
	return m, cmd
}
