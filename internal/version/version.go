// Package version exposes build metadata stamped in by the linker:
//
//	go build -ldflags "-X github.com/dkoosis/routecmp/internal/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata on one line.
func String() string {
	return fmt.Sprintf("routecmp %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
