package lexer

import (
	"slopcc/internal/token"
)

// scanStringLiteral consumes a string literal body after the opening quote.
// start marks the beginning of the whole token, so any L/u/u8/U prefix is
// already covered by the span. Escapes consume the following byte
// unconditionally; validating them is a later phase's job.
func (lx *Lexer) scanStringLiteral(start Mark) token.Token {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(start, token.StringLiteral)
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
		case '\n':
			// Raw newline before the closing quote: malformed. The token
			// ends at the newline boundary; the newline stays unconsumed.
			sp := lx.cursor.SpanFrom(start)
			lx.report(diagUnterminatedString(sp))
			return token.New(token.Unknown, sp)
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diagUnterminatedString(sp))
	return token.New(token.Unknown, sp)
}

// scanCharConst mirrors scanStringLiteral for character constants.
func (lx *Lexer) scanCharConst(start Mark) token.Token {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\'':
			lx.cursor.Bump()
			return lx.emit(start, token.CharConst)
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.report(diagUnterminatedChar(sp))
			return token.New(token.Unknown, sp)
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diagUnterminatedChar(sp))
	return token.New(token.Unknown, sp)
}
