// Package version exposes the fpack build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set by build flags; default to development values otherwise.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersion returns the version string, preferring the compile-time value
// and falling back to module build info.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the git commit hash, preferring the compile-time value
// and falling back to vcs build settings.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// GetFullVersion returns a formatted version string with the short commit
// when one is known.
func GetFullVersion() string {
	version := GetVersion()
	commit := GetCommit()
	if commit != "unknown" && len(commit) > 7 {
		return fmt.Sprintf("%s (%s)", version, commit[:7])
	}
	return version
}
