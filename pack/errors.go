package pack

import (
	"errors"
	"fmt"
)

// Sentinel errors for package pack.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrTraversal covers unreadable directories during collection.
	ErrTraversal = errors.New("directory traversal failed")

	// ErrIO covers file reads and archive writes.
	ErrIO = errors.New("file i/o failed")

	// ErrMetadata covers a missing or malformed mod descriptor.
	ErrMetadata = errors.New("mod metadata missing or malformed")

	// ErrCompression covers failures inside the deflate stream itself.
	ErrCompression = errors.New("compression failed")
)

// StageError ties a failure kind to the path that triggered it, so one bad
// file surfaces as one clearly attributed failure for the whole operation.
type StageError struct {
	Kind error // one of the sentinel errors above
	Path string
	Err  error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause, so
// errors.Is matches ErrIO as well as e.g. os.ErrNotExist.
func (e *StageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func stageErr(kind error, path string, err error) error {
	return &StageError{Kind: kind, Path: path, Err: err}
}
