// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	overlay lipgloss.Style
	cursor  lipgloss.Style
	badge   lipgloss.Style
}

func newStyles(dark bool) styles {
	accent := lipgloss.Color("63")
	text := lipgloss.Color("236")
	if dark {
		accent = lipgloss.Color("141")
		text = lipgloss.Color("252")
	}

	return styles{
		app:     lipgloss.NewStyle().Padding(1, 2).Foreground(text),
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:    lipgloss.NewStyle().Faint(true),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		badge:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Padding(0, 1),
	}
}
