// Package version holds the build version reported in logs and the CLI.
package version

// Version is overridden at build time via -ldflags.
var Version = "0.1.0-dev"
