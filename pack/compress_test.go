package pack

import (
	"bytes"
	"compress/flate"
	"errors"
	"hash/crc32"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// incompressible returns a deterministic pseudo-random payload that deflate
// cannot shrink.
func incompressible(n int) []byte {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, n)
	rng.Read(data)
	return data
}

func TestCompressEntryDeflated(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown bisquick "), 200)

	entry, err := compressEntry("data.lua", data)
	if err != nil {
		t.Fatalf("compressEntry() error = %v", err)
	}
	if entry.Method != Deflated {
		t.Errorf("Method = %v, want Deflated", entry.Method)
	}
	if entry.UncompressedSize != uint64(len(data)) {
		t.Errorf("UncompressedSize = %d, want %d", entry.UncompressedSize, len(data))
	}
	if entry.CompressedSize >= entry.UncompressedSize {
		t.Errorf("CompressedSize = %d, not smaller than %d", entry.CompressedSize, entry.UncompressedSize)
	}
	if entry.CRC32 != crc32.ChecksumIEEE(data) {
		t.Errorf("CRC32 = %08x, want %08x", entry.CRC32, crc32.ChecksumIEEE(data))
	}

	// The payload must inflate back to the original bytes.
	fr := flate.NewReader(bytes.NewReader(entry.Data))
	inflated, err := io.ReadAll(fr)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if !bytes.Equal(inflated, data) {
		t.Error("inflated payload differs from original")
	}
}

func TestCompressEntryStoredFallback(t *testing.T) {
	data := incompressible(4096)

	entry, err := compressEntry("noise.bin", data)
	if err != nil {
		t.Fatalf("compressEntry() error = %v", err)
	}
	if entry.Method != Stored {
		t.Errorf("Method = %v, want Stored for incompressible data", entry.Method)
	}
	if entry.CompressedSize != entry.UncompressedSize {
		t.Errorf("CompressedSize = %d, want %d", entry.CompressedSize, entry.UncompressedSize)
	}
	if !bytes.Equal(entry.Data, data) {
		t.Error("stored payload differs from original")
	}
}

func TestCompressEntryEmpty(t *testing.T) {
	entry, err := compressEntry("empty.txt", nil)
	if err != nil {
		t.Fatalf("compressEntry() error = %v", err)
	}
	if entry.Method != Stored {
		t.Errorf("Method = %v, want Stored for empty data", entry.Method)
	}
	if entry.CompressedSize != 0 || entry.UncompressedSize != 0 {
		t.Errorf("sizes = %d/%d, want 0/0", entry.CompressedSize, entry.UncompressedSize)
	}
	if entry.CRC32 != 0 {
		t.Errorf("CRC32 = %08x, want 0", entry.CRC32)
	}
}

func TestCompressFileMissing(t *testing.T) {
	src := SourceEntry{
		RelPath: "gone.lua",
		AbsPath: filepath.Join(t.TempDir(), "gone.lua"),
	}

	_, err := compressFile(src)
	if err == nil {
		t.Fatal("compressFile() expected error, got nil")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("compressFile() error = %v, want ErrIO", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("compressFile() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestMethodString(t *testing.T) {
	if Stored.String() != "stored" || Deflated.String() != "deflated" {
		t.Errorf("Method.String() = %q/%q", Stored.String(), Deflated.String())
	}
	if Method(99).String() != "unknown" {
		t.Errorf("Method(99).String() = %q, want unknown", Method(99).String())
	}
}
