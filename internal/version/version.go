// Package version records the build identity of the kintsugi binary.
package version

import "fmt"

// Overridden at build time, for example:
//
//	go build -ldflags "-X kintsugi/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// Version is the semantic version.
	Version = "0.1.0"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"

	// BuildTime is the UTC time the binary was built.
	BuildTime = "unknown"
)

// Full renders the version line shown by --version.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
