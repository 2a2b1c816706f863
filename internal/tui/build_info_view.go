// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-dream-journal/models"
)

// renderBuildInfoWindow lists the client build next to the version reported
// by the dream-server.
func renderBuildInfoWindow(st styles, info models.AppBuildInfo, serverVersion string) string {
	rows := [][2]string{
		{"Application", "Dream Journal"},
		{"Version", info.BuildVersion()},
		{"Built", info.BuildDate()},
		{"Commit", info.BuildCommit()},
		{"Server", serverVersion},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(st.help.Render(padLabel(row[0])))
		b.WriteString(valueOrNA(row[1]))
	}

	return renderPage(st, "About", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
