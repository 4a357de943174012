// ============================================================================
// dynstr - Dynamic byte strings
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      msto63
// Created:     2025-02-11
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library version of pkg/dynstr
	Library = "0.1.0"

	// Tool versions
	CLI  = "0.1.0"
	REPL = "0.1.0"
)

// Build metadata, set with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Component returns the version for a given component name
func Component(name string) string {
	switch name {
	case "cli", "dynstr":
		return CLI
	case "repl":
		return REPL
	default:
		return Library
	}
}

// Info describes the running build
type Info struct {
	Component string
	Version   string
	Library   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns build information for a component
func Get(component string) Info {
	return Info{
		Component: component,
		Version:   Component(component),
		Library:   Library,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("%s v%s (dynstr %s, %s, %s)", i.Component, i.Version, i.Library, i.GitCommit, i.Platform)
}
