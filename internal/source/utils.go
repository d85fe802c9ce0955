package source

import (
	"fmt"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

// buildLineIdx computes the ascending table of line-start offsets.
// The first entry is always 0; a byte after each '\n' starts a new line.
// A trailing newline does not create a spurious extra line beyond its start
// entry, because resolution clamps offsets to the content length.
func buildLineIdx(content []byte) []BytePos {
	out := []BytePos{0}
	for i, b := range content {
		if b != '\n' {
			continue
		}
		next, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			panic(fmt.Errorf("line start overflow: %w", err))
		}
		out = append(out, BytePos(next))
	}
	return out
}

// toLineCol resolves a byte offset against a line-start table.
// Offsets past the end of content are clamped to end-of-file.
func toLineCol(lineIdx []BytePos, contentLen uint32, off BytePos) LineCol {
	clamped := uint32(off)
	if clamped > contentLen {
		clamped = contentLen
	}

	// Largest lineIdx[i] <= clamped. lineIdx[0] == 0, so idx >= 1 always.
	idx := sort.Search(len(lineIdx), func(i int) bool {
		return uint32(lineIdx[i]) > clamped
	})
	line := idx - 1

	lineU32, err := safecast.Conv[uint32](line)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{
		Line: lineU32 + 1,
		Col:  clamped - uint32(lineIdx[line]) + 1,
	}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
