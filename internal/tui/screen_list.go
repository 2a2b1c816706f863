// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type listTab int

const (
	tabOwn listTab = iota
	tabShared
)

const listTitleWidth = 40

type listModel struct {
	tab    listTab
	idx    int
	dreams []models.Dream
	shared []models.SharedDream
	unread int
	filter models.DreamFilter
}

func (l listModel) size() int {
	if l.tab == tabShared {
		return len(l.shared)
	}
	return len(l.dreams)
}

func (l *listModel) clamp() {
	if l.idx >= l.size() {
		l.idx = l.size() - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l listModel) selectedID() (string, bool) {
	if l.idx < 0 || l.idx >= l.size() {
		return "", false
	}
	if l.tab == tabShared {
		return l.shared[l.idx].ID, true
	}
	return l.dreams[l.idx].ID, true
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < m.list.size()-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		if m.list.tab == tabOwn {
			m.list.tab = tabShared
		} else {
			m.list.tab = tabOwn
		}
		m.list.idx = 0
	case key.Matches(keyMsg, keys.enter):
		id, ok := m.list.selectedID()
		if !ok {
			return m, nil
		}
		return m, m.cmdOpenDream(id)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newDreamFormModel(nil, m.now())
		m.current = screenForm
	case key.Matches(keyMsg, keys.filter):
		m.filter = newFilterForm(m.list.filter)
		m.current = screenFilter
	case key.Matches(keyMsg, keys.reload):
		return m, m.cmdReload()
	case key.Matches(keyMsg, keys.notifications):
		return m, m.cmdOpenNotifications()
	case key.Matches(keyMsg, keys.settings):
		m.settings = newSettingsModel()
		m.current = screenSettings
	case key.Matches(keyMsg, keys.lock):
		if m.shell.PinEnabled(m.ctx) {
			m.shell.Lock(m.ctx)
			m.current = screenLock
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdSignOut()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) viewList() string {
	var b strings.Builder

	own, shared := "My dreams", "Shared with me"
	if m.list.tab == tabOwn {
		own = m.st.cursor.Render("[" + own + "]")
	} else {
		shared = m.st.cursor.Render("[" + shared + "]")
	}
	b.WriteString(own + "  " + shared)
	if m.list.unread > 0 {
		b.WriteString("   " + m.st.badge.Render(fmt.Sprintf("%d new", m.list.unread)))
	}
	b.WriteString("\n")
	if summary := filterSummary(m.list.filter); summary != "" && m.list.tab == tabOwn {
		b.WriteString(m.st.help.Render("filter: "+summary) + "\n")
	}
	b.WriteString("\n")

	switch m.list.tab {
	case tabOwn:
		if len(m.list.dreams) == 0 {
			b.WriteString("No dreams yet. Press n to write one down.")
		}
		for i, d := range m.list.dreams {
			marker := ""
			if m.shell.IsShared(d.ID) {
				marker = "  [shared]"
			}
			b.WriteString(cursorMark(m.st, i == m.list.idx) + dreamRow(d, listTitleWidth) + marker + "\n")
		}
	case tabShared:
		if len(m.list.shared) == 0 {
			b.WriteString("Nobody has shared a dream with you yet.")
		}
		for i, d := range m.list.shared {
			b.WriteString(cursorMark(m.st, i == m.list.idx) + dreamRow(d.Dream, listTitleWidth) + "  by " + d.SharedByDisplayName + "\n")
		}
	}

	title := "Dream Journal"
	if user, ok := m.shell.CurrentUser(); ok && user.Username != "" {
		title += " - " + user.Username
	}
	return renderPage(m.st, title, strings.TrimRight(b.String(), "\n"),
		"enter: open  n: new  /: filter  tab: switch list  b: notifications  r: reload  o: settings  L: lock  ctrl+l: sign out  q: quit")
}
