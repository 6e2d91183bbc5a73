package pack

// SourceEntry is one regular file selected during traversal.
type SourceEntry struct {
	RelPath string // forward-slash path relative to the tree root
	AbsPath string // path on disk
	Size    int64
}

// Method identifies how an entry's payload is encoded in the archive.
// The values are the zip method codes.
type Method uint16

const (
	Stored   Method = 0 // verbatim copy
	Deflated Method = 8 // DEFLATE stream
)

func (m Method) String() string {
	switch m {
	case Stored:
		return "stored"
	case Deflated:
		return "deflated"
	default:
		return "unknown"
	}
}

// CompressedEntry is the finished payload for one file, ready for assembly.
// A worker owns it until it lands in the result slice; the assembler owns it
// afterward.
type CompressedEntry struct {
	RelPath          string
	Data             []byte
	UncompressedSize uint64
	CompressedSize   uint64
	CRC32            uint32 // checksum of the uncompressed bytes
	Method           Method
}
