// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the version metadata linked into a binary with -ldflags.
// Empty values mean the binary was built without them.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build metadata for the version command.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }
