// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-dream-journal/internal/client"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
	registerRepeat
)

func newLoginForm() inputForm {
	return newInputForm(
		inputField{label: "Email", placeholder: "you@example.com", charLimit: 254},
		inputField{label: "Password", placeholder: "password", secret: true, charLimit: 256},
	)
}

func newRegisterForm() inputForm {
	return newInputForm(
		inputField{label: "Name", placeholder: "shown to people you share with", charLimit: 64},
		inputField{label: "Email", placeholder: "you@example.com", charLimit: 254},
		inputField{label: "Password", placeholder: "password", secret: true, charLimit: 256},
		inputField{label: "Repeat", placeholder: "password", secret: true, charLimit: 256},
	)
}

func (m *appModel) formError(message string) {
	m.toasts = append(m.toasts, client.Toast{Level: client.ToastError, Message: message, At: m.now()})
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.current = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.value(loginEmail))
			password := m.login.value(loginPassword)
			if email == "" || password == "" {
				m.formError("email and password are required")
				return m, m.expireToasts()
			}
			m.login.submitting = true
			return m, m.cmdSignIn(email, password)
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.current = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = m.register.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = m.register.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.value(registerUsername))
			email := strings.TrimSpace(m.register.value(registerEmail))
			password := m.register.value(registerPassword)
			if email == "" || password == "" {
				m.formError("email and password are required")
				return m, m.expireToasts()
			}
			if password != m.register.value(registerRepeat) {
				m.formError("passwords do not match")
				return m, m.expireToasts()
			}
			m.register.submitting = true
			return m, m.cmdSignUp(email, password, name)
		}
	}

	var cmd tea.Cmd
	m.register, cmd = m.register.update(msg)
	return m, cmd
}

func (m appModel) viewLogin() string {
	out := m.login.View()
	if m.login.submitting {
		out += "\nsigning in..."
	}
	return renderPage(m.st, "Sign in", out, "tab: next field  enter: sign in  esc: back")
}

func (m appModel) viewRegister() string {
	out := m.register.View()
	if m.register.submitting {
		out += "\ncreating account..."
	}
	return renderPage(m.st, "Create account", out, "tab: next field  enter: sign up  esc: back")
}
