// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputForm is a column of text inputs with one focused field.
type inputForm struct {
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
}

type inputField struct {
	label       string
	placeholder string
	secret      bool
	charLimit   int
}

func newInputForm(fields ...inputField) inputForm {
	f := inputForm{}
	for _, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = 40
		if field.charLimit > 0 {
			in.CharLimit = field.charLimit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, in)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f inputForm) next() inputForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f inputForm) prev() inputForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f inputForm) update(msg tea.Msg) (inputForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f inputForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f inputForm) View() string {
	out := ""
	for i, in := range f.inputs {
		out += padLabel(f.labels[i]) + "[" + in.View() + "]\n"
	}
	return out
}

func padLabel(label string) string {
	const width = 12
	runes := []rune(label + ":")
	for len(runes) < width {
		runes = append(runes, ' ')
	}
	return string(runes)
}
