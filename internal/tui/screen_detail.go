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

type detailModel struct {
	dream    models.Dream
	own      bool
	sharedBy string
}

func (m appModel) newDetail(d models.Dream) detailModel {
	detail := detailModel{dream: d}
	if user, ok := m.shell.CurrentUser(); ok && user.ID == d.OwnerID {
		detail.own = true
		return detail
	}
	for _, s := range m.list.shared {
		if s.ID == d.ID {
			detail.sharedBy = s.SharedByDisplayName
			break
		}
	}
	return detail
}

func (d detailModel) View(st styles) string {
	var b strings.Builder
	dream := d.dream

	fmt.Fprintf(&b, "When:      %s\n", formatTime(dream.OccurredAt))
	fmt.Fprintf(&b, "Mood:      %s %s\n", moodIcon(dream.Mood), dream.Mood)
	fmt.Fprintf(&b, "Intensity: %s\n", intensityBar(dream.Intensity))
	fmt.Fprintf(&b, "Lucid:     %s\n", map[bool]string{true: "yes", false: "no"}[dream.Lucid])
	if len(dream.Tags) > 0 {
		fmt.Fprintf(&b, "Tags:      %s\n", strings.Join(dream.Tags, ", "))
	}
	if d.sharedBy != "" {
		fmt.Fprintf(&b, "Shared by: %s\n", d.sharedBy)
	}
	b.WriteString("\n")
	b.WriteString(dream.Content)
	b.WriteString("\n\n")
	b.WriteString(st.help.Render("updated " + formatTime(dream.UpdatedAt)))

	hotKeys := "c: copy text  esc: back"
	if d.own {
		hotKeys = "e: edit  d: delete  s: share  c: copy text  esc: back"
	}
	return renderPage(st, dream.Title, b.String(), hotKeys)
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = screenList
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.dream.Title + "\n\n" + m.detail.dream.Content)
	case !m.detail.own:
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		dream := m.detail.dream
		m.form = newDreamFormModel(&dream, m.now())
		m.current = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.pendingDelete = m.detail.dream.ID
	case key.Matches(keyMsg, keys.share):
		m.share = shareModel{dream: m.detail.dream, loading: true}
		m.current = screenShare
		return m, m.cmdLoadUsers()
	}
	return m, nil
}
