package cmd

import (
	"fmt"
	"os"

	"github.com/modforge/fpack/pack"
)

type packFlags struct {
	installDir string
	output     string
	noClean    bool
	jobs       int
	exclude    []string
}

// runPack resolves the destination, removes stale versions of the mod, and
// runs the pack engine. Cleanup only applies when installing into a mods
// directory; an explicit --output path is used as-is.
func runPack(root string, flags packFlags) error {
	info, err := pack.ReadInfo(root)
	if err != nil {
		return err
	}

	installDir := flags.installDir
	if flags.output == "" {
		if installDir == "" {
			installDir = pack.DefaultInstallDir()
		}
		if _, err := os.Stat(installDir); err != nil {
			return fmt.Errorf("install directory %s: %w", installDir, err)
		}
		if !flags.noClean {
			removed, err := pack.RemoveStaleVersions(installDir, info)
			if err != nil {
				return err
			}
			for _, path := range removed {
				fmt.Printf("Removed %s\n", path)
			}
		}
	}

	result, err := pack.Pack(pack.Options{
		Root:       root,
		OutputPath: flags.output,
		InstallDir: installDir,
		Workers:    flags.jobs,
		Exclude:    flags.exclude,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Packed %d files into %s\n", result.EntryCount, result.OutputPath)
	return nil
}
