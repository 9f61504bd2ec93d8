// FILE: alin/src/internal/version/version.go
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is set at compile time via -ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns the full build description.
func String() string {
	return fmt.Sprintf("alin %s (commit: %s, built: %s, %s)", Short(), commit(), BuildTime, runtime.Version())
}

// Short returns just the version tag
func Short() string {
	return Version
}

// commit falls back to the VCS revision embedded by the Go toolchain when
// no commit was injected at link time.
func commit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return GitCommit
}
