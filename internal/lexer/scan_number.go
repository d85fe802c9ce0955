package lexer

import (
	"slopcc/internal/token"
)

// scanPpNumber scans a C preprocessing number: deliberately permissive per
// the pp-number production. It starts on a digit or on '.' followed by a
// digit, then greedily consumes digits, identifier bytes (hex digits,
// suffixes, exponent markers) and dots. An e/E/p/P immediately followed by
// a sign consumes both, so "1e-2" and "0x1p+3" stay one token; rejecting
// malformed numeric text is left to later phases.
func (lx *Lexer) scanPpNumber() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // leading digit or '.'

	for {
		b := lx.cursor.Peek()
		switch {
		case (b == 'e' || b == 'E' || b == 'p' || b == 'P') && lx.signFollows():
			lx.cursor.Bump()
			lx.cursor.Bump()
		case isDec(b) || isIdentStart(b) || b == '.':
			lx.cursor.Bump()
		default:
			return lx.emit(start, token.PpNumber)
		}
	}
}

func (lx *Lexer) signFollows() bool {
	next, ok := lx.cursor.PeekNext()
	return ok && (next == '+' || next == '-')
}
