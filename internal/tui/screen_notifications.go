// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type notificationsModel struct {
	views []models.NotificationView
	idx   int
}

func (n notificationsModel) View(st styles) string {
	var b strings.Builder
	if len(n.views) == 0 {
		b.WriteString("No notifications.")
	}
	for i, v := range n.views {
		line := formatTime(v.CreatedAt) + "  " + v.SharedBy + " shared " + moodIcon(v.DreamMood) + " " + fitText(v.DreamTitle, 36)
		if !v.IsRead {
			line = st.cursor.Render(line)
		}
		b.WriteString(cursorMark(st, i == n.idx) + line + "\n")
	}
	return renderPage(st, "Notifications", strings.TrimRight(b.String(), "\n"), "enter: open dream  esc: back")
}

func (m appModel) updateNotifications(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = screenList
	case key.Matches(keyMsg, keys.up):
		if m.notifications.idx > 0 {
			m.notifications.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.notifications.idx < len(m.notifications.views)-1 {
			m.notifications.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.notifications.views) == 0 {
			return m, nil
		}
		view := m.notifications.views[m.notifications.idx]
		if view.DreamTitle == models.DeletedDreamTitle {
			m.formError("that dream was deleted")
			return m, m.expireToasts()
		}
		return m, m.cmdOpenDream(view.DreamID)
	}
	return m, nil
}
