package pack

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// InfoFileName is the descriptor every Factorio mod carries at its root.
const InfoFileName = "info.json"

// Info is the subset of the mod descriptor the packer needs.
type Info struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DirName returns the top-level directory every archived path is rooted at.
func (i Info) DirName() string {
	return i.Name + "_" + i.Version
}

// ArchiveName returns the file name of the finished archive.
func (i Info) ArchiveName() string {
	return i.DirName() + ".zip"
}

// ReadInfo parses the mod descriptor at the root of the tree. A missing
// file, malformed JSON, or empty name/version field is a metadata error.
func ReadInfo(root string) (Info, error) {
	path := filepath.Join(root, InfoFileName)
	f, err := os.Open(path)
	if err != nil {
		return Info{}, stageErr(ErrMetadata, path, err)
	}
	defer f.Close()

	var info Info
	if err := json.NewDecoder(f).Decode(&info); err != nil {
		return Info{}, stageErr(ErrMetadata, path, err)
	}
	if info.Name == "" {
		return Info{}, stageErr(ErrMetadata, path, errors.New("missing name"))
	}
	if info.Version == "" {
		return Info{}, stageErr(ErrMetadata, path, errors.New("missing version"))
	}
	return info, nil
}
