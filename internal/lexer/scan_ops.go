package lexer

import (
	"slopcc/internal/token"
)

// scanPunctuator consumes one byte and maximal-munches the longest
// punctuator it can begin. Bytes matching no case become a one-byte
// Unknown token.
func (lx *Lexer) scanPunctuator() token.Token {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()

	var kind token.Kind
	switch first {
	case '#':
		if lx.cursor.Eat('#') {
			kind = token.HashHash
		} else {
			kind = token.Hash
		}
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semi
	case ':':
		kind = token.Colon
	case '.':
		// Only a full "..." forms a token beyond the single dot. A lone
		// ".." yields Dot here; the second dot is re-scanned next call.
		kind = token.Dot
		m := lx.cursor.Mark()
		if lx.cursor.Eat('.') {
			if lx.cursor.Eat('.') {
				kind = token.Ellipsis
			} else {
				lx.cursor.Reset(m)
			}
		}
	case '?':
		kind = token.Question
	case '~':
		kind = token.Tilde
	case '+':
		switch {
		case lx.cursor.Eat('+'):
			kind = token.PlusPlus
		case lx.cursor.Eat('='):
			kind = token.PlusAssign
		default:
			kind = token.Plus
		}
	case '-':
		switch {
		case lx.cursor.Eat('-'):
			kind = token.MinusMinus
		case lx.cursor.Eat('>'):
			kind = token.Arrow
		case lx.cursor.Eat('='):
			kind = token.MinusAssign
		default:
			kind = token.Minus
		}
	case '*':
		if lx.cursor.Eat('=') {
			kind = token.StarAssign
		} else {
			kind = token.Star
		}
	case '/':
		if lx.cursor.Eat('=') {
			kind = token.SlashAssign
		} else {
			kind = token.Slash
		}
	case '%':
		if lx.cursor.Eat('=') {
			kind = token.PercentAssign
		} else {
			kind = token.Percent
		}
	case '=':
		if lx.cursor.Eat('=') {
			kind = token.Eq
		} else {
			kind = token.Assign
		}
	case '!':
		if lx.cursor.Eat('=') {
			kind = token.Ne
		} else {
			kind = token.Not
		}
	case '<':
		switch {
		case lx.cursor.Eat('<'):
			if lx.cursor.Eat('=') {
				kind = token.ShlAssign
			} else {
				kind = token.Shl
			}
		case lx.cursor.Eat('='):
			kind = token.Le
		default:
			kind = token.Lt
		}
	case '>':
		switch {
		case lx.cursor.Eat('>'):
			if lx.cursor.Eat('=') {
				kind = token.ShrAssign
			} else {
				kind = token.Shr
			}
		case lx.cursor.Eat('='):
			kind = token.Ge
		default:
			kind = token.Gt
		}
	case '&':
		switch {
		case lx.cursor.Eat('&'):
			kind = token.And
		case lx.cursor.Eat('='):
			kind = token.AmpAssign
		default:
			kind = token.Amp
		}
	case '|':
		switch {
		case lx.cursor.Eat('|'):
			kind = token.Or
		case lx.cursor.Eat('='):
			kind = token.PipeAssign
		default:
			kind = token.Pipe
		}
	case '^':
		if lx.cursor.Eat('=') {
			kind = token.CaretAssign
		} else {
			kind = token.Caret
		}
	default:
		kind = token.Unknown
		lx.report(diagUnknownChar(lx.cursor.SpanFrom(start), first))
	}

	return lx.emit(start, kind)
}
