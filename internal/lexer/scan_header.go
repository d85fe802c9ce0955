package lexer

import (
	"slopcc/internal/token"
)

// HeaderName scans a <...> or "..." header name. This is a distinct entry
// point: only the caller knows an #include directive is in progress, so it
// is never part of ordinary dispatch. A newline or EOF before the closing
// delimiter degrades to Unknown; any other opening byte is consumed as a
// one-byte Unknown; at true EOF there is nothing to consume and EOF is
// returned.
func (lx *Lexer) HeaderName() token.Token {
	start := lx.cursor.Mark()

	switch lx.cursor.Peek() {
	case '<':
		lx.cursor.Bump()
		return lx.headerNameTail(start, '>')
	case '"':
		lx.cursor.Bump()
		return lx.headerNameTail(start, '"')
	default:
		if lx.cursor.EOF() {
			return lx.emit(start, token.EOF)
		}
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.report(diagBadHeaderName(sp))
		return token.New(token.Unknown, sp)
	}
}

func (lx *Lexer) headerNameTail(start Mark, closing byte) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == closing {
			lx.cursor.Bump()
			return lx.emit(start, token.HeaderName)
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diagBadHeaderName(sp))
	return token.New(token.Unknown, sp)
}
