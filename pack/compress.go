package pack

import (
	"bytes"
	"compress/flate"
	"hash/crc32"
	"os"
)

// compressEntry deflates data for relPath, falling back to storing it
// verbatim when deflate does not shrink it, so an entry is never larger than
// its source. The CRC is always computed over the uncompressed bytes;
// archive readers verify against it after inflating.
func compressEntry(relPath string, data []byte) (CompressedEntry, error) {
	entry := CompressedEntry{
		RelPath:          relPath,
		UncompressedSize: uint64(len(data)),
		CRC32:            crc32.ChecksumIEEE(data),
	}

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return CompressedEntry{}, stageErr(ErrCompression, relPath, err)
	}
	if _, err := fw.Write(data); err != nil {
		return CompressedEntry{}, stageErr(ErrCompression, relPath, err)
	}
	if err := fw.Close(); err != nil {
		return CompressedEntry{}, stageErr(ErrCompression, relPath, err)
	}

	if buf.Len() < len(data) {
		entry.Method = Deflated
		entry.Data = buf.Bytes()
	} else {
		entry.Method = Stored
		entry.Data = data
	}
	entry.CompressedSize = uint64(len(entry.Data))
	return entry, nil
}

// compressFile reads src from disk and compresses it. A file that
// disappeared or became unreadable after traversal aborts the whole pack;
// a partial archive is never acceptable output.
func compressFile(src SourceEntry) (CompressedEntry, error) {
	data, err := os.ReadFile(src.AbsPath)
	if err != nil {
		return CompressedEntry{}, stageErr(ErrIO, src.AbsPath, err)
	}
	return compressEntry(src.RelPath, data)
}
