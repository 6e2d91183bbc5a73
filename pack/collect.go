package pack

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// CollectOptions control which files a tree walk selects.
type CollectOptions struct {
	// Exclude lists paths relative to the root that are skipped along with
	// anything beneath them.
	Exclude []string

	// SkipNames lists exact base names skipped at any depth, e.g. a
	// previously built archive sitting inside the tree.
	SkipNames []string
}

// Collect walks root and returns the files to pack, in WalkDir's lexical
// order. Entries whose name begins with a dot are skipped at any depth, as
// is everything beneath a skipped directory. Symbolic links are reported by
// WalkDir as non-directories and are never followed, so a link cycle cannot
// recurse; links are dropped along with every other non-regular file.
func Collect(root string, opts CollectOptions) ([]SourceEntry, error) {
	excluded := make(map[string]bool, len(opts.Exclude))
	for _, e := range opts.Exclude {
		excluded[filepath.ToSlash(filepath.Clean(e))] = true
	}
	skipNames := make(map[string]bool, len(opts.SkipNames))
	for _, n := range opts.SkipNames {
		skipNames[n] = true
	}

	var entries []SourceEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		name := d.Name()
		if strings.HasPrefix(name, ".") || skipNames[name] || excluded[rel] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		entries = append(entries, SourceEntry{
			RelPath: rel,
			AbsPath: path,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, stageErr(ErrTraversal, root, err)
	}
	return entries, nil
}
