package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/keyremap/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/keyremap/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/keyremap/internal/version.Date={{.Date}}
)

// String is the multi-line version banner.
func String() string {
	return fmt.Sprintf("keyremap version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
