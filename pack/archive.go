package pack

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// writeArchive serializes entries into a zip file at dest, storing every
// path under prefix. Payloads arrive already compressed, so each is written
// through CreateRaw with its method, checksum, and sizes; the zip writer
// records each local header's offset and emits the central directory and
// end record on Close. The archive is staged as a temporary file next to
// dest and renamed into place only after a clean Close, so an interrupted
// run never leaves a truncated archive at dest.
func writeArchive(dest, prefix string, entries []CompressedEntry) error {
	tmp := filepath.Join(filepath.Dir(dest),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(dest), uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return stageErr(ErrIO, tmp, err)
	}
	defer func() {
		f.Close()
		os.Remove(tmp) // no-op once the rename has happened
	}()

	zw := zip.NewWriter(f)
	for _, entry := range entries {
		hdr := &zip.FileHeader{
			Name:               prefix + "/" + entry.RelPath,
			Method:             uint16(entry.Method),
			CRC32:              entry.CRC32,
			CompressedSize64:   entry.CompressedSize,
			UncompressedSize64: entry.UncompressedSize,
		}
		w, err := zw.CreateRaw(hdr)
		if err != nil {
			return stageErr(ErrIO, hdr.Name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return stageErr(ErrIO, hdr.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return stageErr(ErrIO, dest, err)
	}
	if err := f.Close(); err != nil {
		return stageErr(ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return stageErr(ErrIO, dest, err)
	}
	return nil
}
