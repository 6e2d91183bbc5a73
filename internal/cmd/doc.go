// Package cmd wires the fpack command-line interface.
//
// fpack is single-purpose: the root command packs the mod in the current
// (or given) directory and installs the archive into the Factorio mods
// directory. Flags mirror the knobs of the pack engine: install directory,
// explicit output path, worker count, exclusions, and whether stale
// versions of the mod are removed first.
package cmd
