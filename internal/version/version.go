// Package version holds the boxtable build version, set by ldflags.
package version

// Version is the build version, set via ldflags at build time.
var Version = "v0.0.0-dev" //nolint:gochecknoglobals // Set by ldflags at build time.
