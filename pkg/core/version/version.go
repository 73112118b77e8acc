// ============================================================================
// bytex - Byte-Sequence Text Tool
// ============================================================================
//
// Package:     version
// Description: Central version information of the bytex command
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Tool is the version of the bytex command
	Tool = "1.0.0"

	// Library is the version of the foundation/utils/bytex package
	Library = "0.1.0"
)

// Commit and BuildDate are set at build time via -ldflags
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info bundles version information for output
type Info struct {
	Tool      string `json:"tool" cbor:"tool"`
	Library   string `json:"library" cbor:"library"`
	Commit    string `json:"commit" cbor:"commit"`
	BuildDate string `json:"build_date" cbor:"build_date"`
	GoVersion string `json:"go_version" cbor:"go_version"`
	Platform  string `json:"platform" cbor:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Tool:      Tool,
		Library:   Library,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("bytex %s (library %s, commit %s, built %s, %s %s)",
		i.Tool, i.Library, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
