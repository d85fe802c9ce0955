// Package lexer scans raw C source bytes into preprocessing tokens.
// Scanning never fails: malformed input degrades to Unknown (or Comment)
// tokens and, when a Reporter is configured, span-anchored diagnostics.
// Token spans tile the input with no gaps or overlaps.
package lexer

import (
	"fmt"

	"slopcc/internal/source"
	"slopcc/internal/token"
)

// Lexer produces the preprocessing-token sequence for one file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// New creates a lexer over the given file. The file's ID threads through
// into every emitted span.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next preprocessing token. After the input is exhausted
// it always returns a zero-width EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return lx.emit(lx.cursor.Mark(), token.EOF)
	}

	b := lx.cursor.Peek()

	switch {
	case isWhitespaceNoNewline(b):
		return lx.whitespace()

	case b == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.emit(start, token.Newline)

	case b == '/' && lx.peekNextIs('/'):
		return lx.lineComment()

	case b == '/' && lx.peekNextIs('*'):
		return lx.blockComment()

	case isDec(b) || (b == '.' && lx.digitAfterDot()):
		return lx.scanPpNumber()

	case b == 'L' || b == 'u' || b == 'U':
		return lx.scanIdentOrLiteralPrefix()

	case isIdentStart(b):
		return lx.scanIdent()

	case b == '"':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.scanStringLiteral(start)

	case b == '\'':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.scanCharConst(start)

	default:
		return lx.scanPunctuator()
	}
}

// Tokenize scans the whole input, returning every token through the
// terminal EOF inclusive.
func (lx *Lexer) Tokenize() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// Tokenize scans a file in one call.
func Tokenize(file *source.File, opts Options) []token.Token {
	return New(file, opts).Tokenize()
}

func (lx *Lexer) whitespace() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.EatWhile(isWhitespaceNoNewline)
	return lx.emit(start, token.Whitespace)
}

func (lx *Lexer) lineComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.EatWhile(func(b byte) bool { return b != '\n' })
	return lx.emit(start, token.Comment)
}

func (lx *Lexer) blockComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '*' && lx.cursor.Eat('/') {
			closed = true
			break
		}
	}
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report(diagUnterminatedBlockComment(sp))
	}
	return token.New(token.Comment, sp)
}

func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.EatWhile(isIdentContinue)
	return lx.emit(start, token.Ident)
}

// scanIdentOrLiteralPrefix handles L, u and U, which may open a prefixed
// string/char literal or just start an ordinary identifier.
func (lx *Lexer) scanIdentOrLiteralPrefix() token.Token {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()

	if first == 'u' && lx.cursor.Eat('8') {
		if lx.cursor.Eat('"') {
			return lx.scanStringLiteral(start)
		}
		// "u8" without a quote continues as an identifier.
		lx.cursor.EatWhile(isIdentContinue)
		return lx.emit(start, token.Ident)
	}

	if lx.cursor.Eat('"') {
		return lx.scanStringLiteral(start)
	}
	if lx.cursor.Eat('\'') {
		return lx.scanCharConst(start)
	}

	lx.cursor.EatWhile(isIdentContinue)
	return lx.emit(start, token.Ident)
}

func (lx *Lexer) emit(start Mark, kind token.Kind) token.Token {
	if lx.cursor.Off > source.BytePos(len(lx.file.Content)) {
		panic(fmt.Sprintf("lexer cursor %d ran past input length %d", lx.cursor.Off, len(lx.file.Content)))
	}
	return token.New(kind, lx.cursor.SpanFrom(start))
}

func (lx *Lexer) peekNextIs(b byte) bool {
	next, ok := lx.cursor.PeekNext()
	return ok && next == b
}

func (lx *Lexer) digitAfterDot() bool {
	next, ok := lx.cursor.PeekNext()
	return ok && isDec(next)
}
