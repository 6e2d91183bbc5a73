package pack

import (
	"os"
	"path/filepath"
)

// RemoveStaleVersions deletes previously installed archives of the same mod
// from dir, leaving the version described by info alone. It returns the
// paths it removed. Matches that are not regular files are left in place.
func RemoveStaleVersions(dir string, info Info) ([]string, error) {
	pattern := filepath.Join(dir, info.Name+"_*.*.*.zip")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, stageErr(ErrIO, pattern, err)
	}

	keep := filepath.Join(dir, info.ArchiveName())
	var removed []string
	for _, match := range matches {
		if match == keep {
			continue
		}
		st, err := os.Lstat(match)
		if err != nil || !st.Mode().IsRegular() {
			continue
		}
		if err := os.Remove(match); err != nil {
			return removed, stageErr(ErrIO, match, err)
		}
		removed = append(removed, match)
	}
	return removed, nil
}
