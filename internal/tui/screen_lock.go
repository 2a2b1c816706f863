// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func newPinForm() inputForm {
	return newInputForm(inputField{label: "PIN", placeholder: "****", secret: true, charLimit: 64})
}

func (m appModel) updateLock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.pin.submitting || m.pin.value(0) == "" {
				return m, nil
			}
			m.pin.submitting = true
			pin := m.pin.value(0)
			m.pin.inputs[0].SetValue("")
			return m, m.cmdUnlock(pin)
		}
	}

	var cmd tea.Cmd
	m.pin, cmd = m.pin.update(msg)
	return m, cmd
}

func (m appModel) viewLock() string {
	return renderPage(m.st, "Dream Journal is locked", "Enter your PIN to continue.\n\n"+m.pin.View(), "enter: unlock  esc: quit")
}
