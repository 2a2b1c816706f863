// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus positions of the dream form. fieldContent is the text area, every
// other position is a text input.
const (
	fieldTitle = iota
	fieldContent
	fieldWhen
	fieldMood
	fieldIntensity
	fieldLucid
	fieldTags
	fieldCount
)

var (
	errInvalidWhen      = errors.New("date must look like 2024-01-31 or 2024-01-31 07:30")
	errInvalidIntensity = fmt.Errorf("intensity must be a number from %d to %d", models.MinIntensity, models.MaxIntensity)
)

type dreamFormModel struct {
	base    models.Dream
	editing bool

	// inputs[fieldContent] is unused, content holds that field.
	inputs     [fieldCount]textinput.Model
	content    textarea.Model
	focus      int
	submitting bool
}

func newDreamFormModel(dream *models.Dream, now time.Time) dreamFormModel {
	m := dreamFormModel{}
	for f := range m.inputs {
		m.inputs[f] = textinput.New()
		m.inputs[f].Width = 50
	}
	m.inputs[fieldTitle].Placeholder = "what was it about"
	m.inputs[fieldWhen].Placeholder = dateTimeLayout
	m.inputs[fieldMood].Placeholder = moodChoices()
	m.inputs[fieldIntensity].Placeholder = "1-5"
	m.inputs[fieldLucid].Placeholder = "y/n"
	m.inputs[fieldTags].Placeholder = "comma separated"

	m.content = textarea.New()
	m.content.SetWidth(50)
	m.content.SetHeight(5)
	m.content.Placeholder = "describe the dream"

	if dream == nil {
		m.inputs[fieldWhen].SetValue(now.Local().Format(dateTimeLayout))
		m.inputs[fieldMood].SetValue(string(models.MoodNeutral))
		m.inputs[fieldIntensity].SetValue("3")
		m.inputs[fieldLucid].SetValue("n")
	} else {
		m.base = *dream
		m.editing = true
		m.inputs[fieldTitle].SetValue(dream.Title)
		m.content.SetValue(dream.Content)
		m.inputs[fieldWhen].SetValue(dream.OccurredAt.Local().Format(dateTimeLayout))
		m.inputs[fieldMood].SetValue(string(dream.Mood))
		m.inputs[fieldIntensity].SetValue(strconv.Itoa(dream.Intensity))
		m.inputs[fieldLucid].SetValue(yesNo(dream.Lucid))
		m.inputs[fieldTags].SetValue(strings.Join(dream.Tags, ", "))
	}

	m.inputs[fieldTitle].Focus()
	return m
}

func moodChoices() string {
	names := make([]string, 0, len(models.Moods))
	for _, mood := range models.Moods {
		names = append(names, string(mood))
	}
	return strings.Join(names, "|")
}

func yesNo(v bool) string {
	if v {
		return "y"
	}
	return "n"
}

func (m dreamFormModel) setFocus(f int) dreamFormModel {
	if m.focus == fieldContent {
		m.content.Blur()
	} else {
		m.inputs[m.focus].Blur()
	}
	m.focus = f
	if f == fieldContent {
		m.content.Focus()
	} else {
		m.inputs[f].Focus()
	}
	return m
}

func (m dreamFormModel) next() dreamFormModel {
	return m.setFocus((m.focus + 1) % fieldCount)
}

func (m dreamFormModel) prev() dreamFormModel {
	return m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
}

func (m dreamFormModel) update(msg tea.Msg) (dreamFormModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldContent {
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// toDream applies the form to the edited dream. Title, content and mood are
// checked again by the dream store.
func (m dreamFormModel) toDream() (models.Dream, error) {
	d := m.base
	d.Title = strings.TrimSpace(m.inputs[fieldTitle].Value())
	d.Content = strings.TrimSpace(m.content.Value())
	d.Mood = models.Mood(strings.ToLower(strings.TrimSpace(m.inputs[fieldMood].Value())))

	when, err := parseWhen(m.inputs[fieldWhen].Value())
	if err != nil {
		return models.Dream{}, err
	}
	d.OccurredAt = when

	intensity, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldIntensity].Value()))
	if err != nil || intensity < models.MinIntensity || intensity > models.MaxIntensity {
		return models.Dream{}, errInvalidIntensity
	}
	d.Intensity = intensity

	switch strings.ToLower(strings.TrimSpace(m.inputs[fieldLucid].Value())) {
	case "y", "yes", "true", "1":
		d.Lucid = true
	default:
		d.Lucid = false
	}

	d.Tags = models.NormalizeTags(strings.Split(m.inputs[fieldTags].Value(), ","))
	return d, nil
}

// parseWhen reads a local date with an optional time of day.
func parseWhen(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(dateTimeLayout, raw, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dayLayout, raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidWhen
}

func (m dreamFormModel) View(st styles) string {
	title := "New dream"
	if m.editing {
		title = "Edit: " + fitText(m.base.Title, 40)
	}

	var b strings.Builder
	b.WriteString(padLabel("Title") + "[" + m.inputs[fieldTitle].View() + "]\n")
	b.WriteString(padLabel("Dream") + "\n" + m.content.View() + "\n")
	b.WriteString(padLabel("When") + "[" + m.inputs[fieldWhen].View() + "]\n")
	b.WriteString(padLabel("Mood") + "[" + m.inputs[fieldMood].View() + "]\n")
	b.WriteString(padLabel("Intensity") + "[" + m.inputs[fieldIntensity].View() + "]\n")
	b.WriteString(padLabel("Lucid") + "[" + m.inputs[fieldLucid].View() + "]\n")
	b.WriteString(padLabel("Tags") + "[" + m.inputs[fieldTags].View() + "]")
	if m.submitting {
		b.WriteString("\n\nsaving...")
	}

	return renderPage(st, title, b.String(), "tab: next field  ctrl+s: save  esc: cancel")
}
