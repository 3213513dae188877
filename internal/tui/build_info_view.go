// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-eightball/models"
)

func renderBuildInfoWindow(st styles, info models.AppBuildInfo, apiBaseURL string) string {
	var b strings.Builder

	b.WriteString("Application: eightball\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")
	b.WriteString("API: ")
	b.WriteString(apiBaseURL)

	return renderPage(st, "ABOUT", b.String(), "esc: back")
}
