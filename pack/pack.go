package pack

import "path/filepath"

// Options configure a single pack operation.
type Options struct {
	// Root is the mod source tree. Empty means the current directory.
	Root string

	// OutputPath is the full path of the archive to write. When empty, the
	// archive lands in InstallDir under its canonical <name>_<version>.zip
	// name.
	OutputPath string

	// InstallDir receives the archive when OutputPath is empty.
	InstallDir string

	// Workers is the compression pool size. Zero means one worker per CPU;
	// one gives fully deterministic scheduling for tests.
	Workers int

	// BatchSize bounds how many compressed payloads are buffered at once.
	// Zero means DefaultBatchSize.
	BatchSize int

	// Exclude lists root-relative paths left out of the archive.
	Exclude []string
}

// Result describes a finished pack operation.
type Result struct {
	Info       Info
	OutputPath string
	EntryCount int
}

// Pack builds the mod archive for opts.Root: it reads the descriptor,
// collects the tree, compresses every file across the worker pool, and
// assembles the archive at the destination. It either succeeds completely
// or leaves no file at the destination; there are no retries.
func Pack(opts Options) (Result, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}

	info, err := ReadInfo(root)
	if err != nil {
		return Result{}, err
	}

	dest := opts.OutputPath
	if dest == "" {
		dest = filepath.Join(opts.InstallDir, info.ArchiveName())
	}

	sources, err := Collect(root, CollectOptions{
		Exclude: opts.Exclude,
		// The finished archive may live inside the tree being packed.
		SkipNames: []string{info.ArchiveName()},
	})
	if err != nil {
		return Result{}, err
	}

	entries, err := compressAll(sources, opts.Workers, opts.BatchSize)
	if err != nil {
		return Result{}, err
	}

	if err := writeArchive(dest, info.DirName(), entries); err != nil {
		return Result{}, err
	}
	return Result{Info: info, OutputPath: dest, EntryCount: len(entries)}, nil
}
