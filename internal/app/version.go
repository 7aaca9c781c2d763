package app

import "fmt"

// Set with -ldflags "-X github.com/kesava/telugu-word-analysis/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
