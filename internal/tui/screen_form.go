// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.current = screenDetail
			} else {
				m.current = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.form.submitting {
				return m, nil
			}
			dream, err := m.form.toDream()
			if err != nil {
				m.formError(err.Error())
				return m, m.expireToasts()
			}
			m.form.submitting = true
			return m, m.cmdSaveDream(dream)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.current = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.filter = m.filter.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.filter = m.filter.prev()
			return m, nil
		case key.Matches(keyMsg, keys.reset):
			m.current = screenList
			m.list.tab, m.list.idx = tabOwn, 0
			return m, m.cmdSetFilter(models.DreamFilter{})
		case key.Matches(keyMsg, keys.enter):
			filter, err := filterFromForm(m.filter)
			if err != nil {
				m.formError(err.Error())
				return m, m.expireToasts()
			}
			if filter.Mood != "" && !filter.Mood.Valid() {
				m.formError("mood must be one of " + moodChoices())
				return m, m.expireToasts()
			}
			m.current = screenList
			m.list.tab, m.list.idx = tabOwn, 0
			return m, m.cmdSetFilter(filter)
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.update(msg)
	return m, cmd
}
