// ============================================================================
// textkit - String Processing Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and the CLI
// Author:      msto63
// Created:     2025-02-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release version of textkit
const Version = "0.1.0"

// Build metadata, set with -ldflags "-X ..." at release time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the build information as an indented block
func (b BuildInfo) String() string {
	return fmt.Sprintf("textkit v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		b.Version, b.GitCommit, b.BuildDate, b.GoVersion, b.Platform)
}
