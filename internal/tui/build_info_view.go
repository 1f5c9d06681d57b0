// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RenderBuildInfo draws the client build metadata and, when known, the
// version reported by the server.
func RenderBuildInfo(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("go-pass-vault"))
	b.WriteString("\n\n")
	writeField(&b, "Version", valueOrNA(info.BuildVersion()))
	writeField(&b, "Date", valueOrNA(info.BuildDate()))
	writeField(&b, "Commit", valueOrNA(info.BuildCommit()))
	if serverVersion != "" {
		writeField(&b, "Server", serverVersion)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
