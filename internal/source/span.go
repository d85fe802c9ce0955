package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) within one file.
// Invariant: Start <= End. A zero-width span marks a point location.
type Span struct {
	File  FileID
	Start BytePos // inclusive
	End   BytePos // exclusive
}

// NewSpan builds a span and panics if start > end.
func NewSpan(file FileID, start, end BytePos) Span {
	if start > end {
		panic(fmt.Sprintf("span start %d must be <= end %d", start, end))
	}
	return Span{File: file, Start: start, End: end}
}

// At returns a zero-width span at the given offset.
func At(file FileID, off BytePos) Span {
	return Span{File: file, Start: off, End: off}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return uint32(s.End - s.Start)
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Bytes returns the slice of content covered by the span.
func (s Span) Bytes(content []byte) []byte {
	return content[s.Start:s.End]
}

// Cover returns the union of two spans from the same file: min of starts,
// max of ends. Spans from different files are not comparable; the receiver
// is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
