package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns the byte content of every registered input file and assigns
// stable FileIDs in registration order. IDs are sequential and never reused.
// A FileSet is single-threaded; register all files before sharing spans.
type FileSet struct {
	files []File
	index map[string]FileID // normalized path -> latest id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores a file already read into memory and returns a new FileID.
// It always creates a new FileID even if the same path was added before.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("file %q exceeds 4 GiB: %w", path, err))
	}

	id := FileID(lenFiles)
	normalized := ""
	if path != "" {
		normalized = normalizePath(path)
	}
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    normalized,
		Content: content,
		LineIdx: buildLineIdx(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	if normalized != "" {
		fs.index[normalized] = id
	}
	return id
}

// Load reads a file from disk and registers it. Read failures come back as
// a *ReadError carrying the path and the underlying cause.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, &ReadError{Path: path, Err: err}
	}
	return fs.Add(path, content, 0), nil
}

// AddStdin registers standard input content, which has no path.
func (fs *FileSet) AddStdin(content []byte) FileID {
	return fs.Add("", content, FileStdin)
}

// AddVirtual adds an in-memory file (tests, generated input).
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file for the given ID. An ID not issued by this FileSet
// is a caller bug and panics.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		panic(fmt.Sprintf("invalid file id %d (file set has %d files)", id, len(fs.files)))
	}
	return &fs.files[id]
}

// GetLatest returns the latest file ID registered for the given path.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fs.index[normalizePath(path)]
	return id, ok
}

// Len reports the number of registered files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Resolve converts a span into a display-ready location record. Offsets
// beyond the file content are clamped to end-of-file.
func (fs *FileSet) Resolve(span Span) ResolvedSpan {
	f := fs.Get(span.File)
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	loc := toLineCol(f.LineIdx, contentLen, span.Start)
	return ResolvedSpan{
		Name:   f.Name(),
		Line:   loc.Line,
		Col:    loc.Col,
		Length: span.Len(),
	}
}

// LineCol resolves a single byte offset within the file.
func (f *File) LineCol(off BytePos) LineCol {
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return toLineCol(f.LineIdx, contentLen, off)
}
