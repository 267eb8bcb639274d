// Package buildinfo exposes version metadata injected at build time.
package buildinfo

// Set via -ldflags at build time; the defaults identify dev builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
