// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfoUnknown stands in for metadata that was not injected at link time.
const BuildInfoUnknown = "N/A"

// AppBuildInfo carries immutable build-time metadata of the binary.
//
// Values are injected with -ldflags "-X main.buildVersion=..." and shown by
// the -version flag and the about screen of the terminal UI.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

// WithDefaults returns a copy where every missing value reads [BuildInfoUnknown].
func (a AppBuildInfo) WithDefaults() AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(a.version),
		date:    orUnknown(a.date),
		commit:  orUnknown(a.commit),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return BuildInfoUnknown
	}
	return s
}

// BuildVersion returns the release version, e.g. "v1.2.0".
func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.date
}

// BuildCommit returns the commit hash the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}
