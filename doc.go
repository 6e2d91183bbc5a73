// Package main provides the fpack command-line interface.
//
// fpack packages a Factorio mod source tree into the <name>_<version>.zip
// archive the game loads, reading the mod's name and version from info.json
// and installing the result into the platform's mods directory. Files are
// compressed in parallel across a worker pool while the archive itself is
// assembled in deterministic traversal order.
package main
