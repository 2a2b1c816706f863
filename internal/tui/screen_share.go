// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type shareModel struct {
	dream   models.Dream
	users   []models.ShareableUser
	idx     int
	loading bool
	// sharedWith records the outcome of shares made on this screen.
	sharedWith map[string]bool
}

func (s shareModel) View(st styles) string {
	var b strings.Builder
	switch {
	case s.loading:
		b.WriteString("loading people...")
	case len(s.users) == 0:
		b.WriteString("There is nobody to share with yet.")
	}
	for i, u := range s.users {
		mark := ""
		if shared, ok := s.sharedWith[u.ID]; ok {
			mark = map[bool]string{true: "  [shared]", false: "  [removed]"}[shared]
		}
		b.WriteString(cursorMark(st, i == s.idx) + u.DisplayName + mark + "\n")
	}
	return renderPage(st, "Share \""+fitText(s.dream.Title, 40)+"\"", strings.TrimRight(b.String(), "\n"),
		"enter: share  x: stop sharing  esc: back")
}

func (m appModel) updateShare(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = screenDetail
	case key.Matches(keyMsg, keys.up):
		if m.share.idx > 0 {
			m.share.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.share.idx < len(m.share.users)-1 {
			m.share.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.share.users) == 0 {
			return m, nil
		}
		return m, m.cmdShare(m.share.dream.ID, m.share.users[m.share.idx].ID)
	case key.Matches(keyMsg, keys.unshare):
		if len(m.share.users) == 0 {
			return m, nil
		}
		return m, m.cmdUnshare(m.share.dream.ID, m.share.users[m.share.idx].ID)
	}
	return m, nil
}
