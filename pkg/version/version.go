// Package version holds build metadata injected with -ldflags.
package version

import "fmt"

// Build metadata, set with
// -ldflags "-X github.com/dfr-tools/dfrgram/pkg/version.Version=v1.2.3 ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata on one line.
func String() string {
	return fmt.Sprintf("dfrgram %s (commit %s, built %s)", Version, Commit, Date)
}
