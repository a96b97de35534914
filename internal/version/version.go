// Package version carries build metadata stamped in with -ldflags.
package version

import "fmt"

var (
	// Version is the release tag, set with -X fplthreats/internal/version.Version.
	Version = "dev"
	Commit  = "unknown"
	// BuildDate is an RFC 3339 timestamp.
	BuildDate = "unknown"
)

// String renders the block printed by the version command.
func String() string {
	return fmt.Sprintf("fplthreats %s\ncommit: %s\nbuilt: %s", Version, Commit, BuildDate)
}

// UserAgent identifies the binary to the FPL API.
func UserAgent() string {
	return "fplthreats/" + Version
}
