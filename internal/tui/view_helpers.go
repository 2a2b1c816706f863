// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-dream-journal/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const (
	dayLayout      = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

func renderPage(st styles, title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(st.title.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(st.help.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(st.help.Render("ctrl+c: quit"))

	return b.String()
}

// fitText cuts v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func cursorMark(st styles, selected bool) string {
	if selected {
		return st.cursor.Render("> ")
	}
	return "  "
}

func moodIcon(m models.Mood) string {
	switch m {
	case models.MoodHappy:
		return "(^_^)"
	case models.MoodSad:
		return "(T_T)"
	case models.MoodScary:
		return "(O_O)"
	case models.MoodRomantic:
		return "(<3 )"
	case models.MoodWeird:
		return "(@_@)"
	default:
		return "(-_-)"
	}
}

func intensityBar(n int) string {
	if n < models.MinIntensity {
		n = models.MinIntensity
	}
	if n > models.MaxIntensity {
		n = models.MaxIntensity
	}
	return strings.Repeat("*", n) + strings.Repeat(".", models.MaxIntensity-n)
}

func dreamRow(d models.Dream, width int) string {
	lucid := " "
	if d.Lucid {
		lucid = "L"
	}
	return fmt.Sprintf("%s %s %s %s", d.OccurredAt.Local().Format(dayLayout), moodIcon(d.Mood), lucid, fitText(d.Title, width))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateTimeLayout)
}
