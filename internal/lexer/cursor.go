package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"slopcc/internal/source"
)

// Cursor is a byte-scanning position within one file. All look-ahead is
// bounded to two bytes; only the literal/comment scanners run further via
// EatWhile.
type Cursor struct {
	File *source.File
	Off  source.BytePos
	// limit is the exclusive upper bound for Off, len(File.Content).
	limit source.BytePos
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Off: 0, limit: source.BytePos(limit)}
}

// EOF reports whether the input is exhausted.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek returns the current byte without consuming, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekNext returns the byte one past the current one, or 0, false when
// fewer than two bytes remain.
func (c *Cursor) PeekNext() (byte, bool) {
	if c.Off+1 >= c.limit {
		return 0, false
	}
	return c.File.Content[c.Off+1], true
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte only if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// EatWhile consumes the maximal run of bytes matching pred.
func (c *Cursor) EatWhile(pred func(byte) bool) {
	for !c.EOF() && pred(c.File.Content[c.Off]) {
		c.Off++
	}
}

// Mark is a saved cursor position used to build spans.
type Mark source.BytePos

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span from a mark up to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: source.BytePos(m),
		End:   c.Off,
	}
}

// Reset moves the cursor back to a mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = source.BytePos(m)
}
