//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the fdl module embedded at build time.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text and default config paths.
	Name = "fdl"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Frame definition language toolkit"
)
