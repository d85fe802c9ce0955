package source

type (
	// FileID uniquely identifies a source file within the FileSet that issued it.
	FileID uint32
	// BytePos is a byte offset into a single file's content. Files are
	// limited to 4 GiB.
	BytePos uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (tests, generated input).
	FileVirtual FileFlags = 1 << iota
	// FileStdin indicates the file holds standard input and has no path.
	FileStdin
)

// File captures metadata and content for a single source file.
// Never mutated after registration.
type File struct {
	ID      FileID
	Path    string // empty for stdin
	Content []byte
	LineIdx []BytePos // ascending table of line-start offsets; LineIdx[0] == 0
	Hash    [32]byte
	Flags   FileFlags
}

// Name returns the display name of the file: its path, or "stdin" for
// path-less input.
func (f *File) Name() string {
	if f.Flags&FileStdin != 0 || f.Path == "" {
		return "stdin"
	}
	return f.Path
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// ResolvedSpan is a display-ready location record for a span.
type ResolvedSpan struct {
	Name   string
	Line   uint32 // 1-based
	Col    uint32 // 1-based
	Length uint32 // span length in bytes
}
