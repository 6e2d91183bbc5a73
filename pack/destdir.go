package pack

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultInstallDir returns the platform's Factorio mods directory, or "."
// when the platform has no conventional location. The caller decides
// whether the directory actually exists.
func DefaultInstallDir() string {
	switch runtime.GOOS {
	case "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return filepath.Join(home, ".factorio", "mods")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "."
		}
		return filepath.Join(appData, "Factorio", "mods")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return filepath.Join(home, "Library", "Application Support", "factorio", "mods")
	default:
		return "."
	}
}
