// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, server ServerStatusMsg) string {
	var b strings.Builder

	b.WriteString("Application: Mood Journal\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")
	b.WriteString("Server: ")
	b.WriteString(renderServerStatus(server))

	return renderPage("ABOUT", b.String(), "v/esc: back")
}

func renderServerStatus(server ServerStatusMsg) string {
	switch {
	case server.CheckedAt.IsZero():
		return "not checked yet"
	case !server.Online:
		return "offline (checked " + formatTimestamp(server.CheckedAt) + ")"
	default:
		return "online, " + valueOrNA(server.Version)
	}
}
