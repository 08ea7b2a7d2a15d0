// Package buildinfo carries release metadata stamped in at link time, e.g.
// -ldflags "-X github.com/tally-dev/tally/internal/buildinfo.Version=v1.0.0".
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
