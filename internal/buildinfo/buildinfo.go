// Package buildinfo carries the version identifiers stamped in at
// link time via -ldflags.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("badgewire %s (commit=%s, date=%s)", Version, Commit, Date)
}
