package cmd

import (
	"github.com/modforge/fpack/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the fpack CLI.
func NewRootCmd() *cobra.Command {
	var opts packFlags

	cmd := &cobra.Command{
		Use:   "fpack [MOD_DIR]",
		Short: "Package a Factorio mod directory into its installable zip",
		Long: `fpack builds <name>_<version>.zip from a mod source tree and places it in
the Factorio mods directory.

MOD_DIR is the mod source tree and defaults to the current directory. It must
contain an info.json with the mod's name and version. Files are compressed in
parallel and stored under a <name>_<version>/ prefix, as the game expects.
Entries whose name starts with a dot (.git, .vscode, ...) are never packed.`,
		Args:    cobra.MaximumNArgs(1),
		Version: version.GetFullVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			cmd.SilenceUsage = true
			return runPack(root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.installDir, "install-dir", "i", "",
		"Install the archive to this directory instead of the default mods path")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"Write the archive to this exact path, bypassing the install directory")
	cmd.Flags().BoolVarP(&opts.noClean, "no-clean", "n", false,
		"Do not remove other installed versions of the mod")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0,
		"Number of compression workers (default: one per CPU)")
	cmd.Flags().StringArrayVarP(&opts.exclude, "exclude", "e", nil,
		"Exclude this path (relative to MOD_DIR) from the archive; repeatable")

	return cmd
}
