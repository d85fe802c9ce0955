package lexer

import (
	"testing"

	"slopcc/internal/source"
)

func makeFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(makeFile("a\nb"))

	if c.EOF() {
		t.Fatal("expected non-EOF at start")
	}
	if c.Peek() != 'a' {
		t.Errorf("expected peek 'a', got %q", c.Peek())
	}
	if next, ok := c.PeekNext(); !ok || next != '\n' {
		t.Errorf("expected peek-next newline, got %q ok=%v", next, ok)
	}
	if c.Bump() != 'a' || c.Bump() != '\n' || c.Bump() != 'b' {
		t.Error("bump sequence mismatch")
	}
	if !c.EOF() {
		t.Error("expected EOF after consuming all bytes")
	}
	if c.Bump() != 0 || c.Peek() != 0 {
		t.Error("bump/peek at EOF must return 0")
	}
}

func TestCursorPeekNextAtLastByte(t *testing.T) {
	c := NewCursor(makeFile("x"))
	if _, ok := c.PeekNext(); ok {
		t.Error("PeekNext must fail with fewer than two bytes left")
	}
}

func TestCursorEat(t *testing.T) {
	c := NewCursor(makeFile("ab"))
	if c.Eat('b') {
		t.Error("Eat must not consume a non-matching byte")
	}
	if !c.Eat('a') || !c.Eat('b') {
		t.Error("Eat must consume matching bytes")
	}
	if c.Eat('c') {
		t.Error("Eat at EOF must fail")
	}
}

func TestCursorEatWhile(t *testing.T) {
	c := NewCursor(makeFile("   x"))
	c.EatWhile(func(b byte) bool { return b == ' ' })
	if c.Peek() != 'x' {
		t.Errorf("expected cursor at 'x', got %q", c.Peek())
	}
}

func TestCursorMarkAndSpan(t *testing.T) {
	f := makeFile("hello")
	c := NewCursor(f)
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 || sp.File != f.ID {
		t.Errorf("unexpected span %v", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("expected reset to offset 0, got %d", c.Off)
	}
}
