package lexer

import (
	"fmt"

	"slopcc/internal/diag"
	"slopcc/internal/source"
)

// Options configures a Lexer. Reporter may be nil: malformed input then
// still degrades to tokens, just without diagnostics.
type Options struct {
	Reporter diag.Reporter
}

type lexDiag struct {
	code diag.Code
	sev  diag.Severity
	span source.Span
	msg  string
}

func (lx *Lexer) report(d lexDiag) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(d.code, d.sev, d.span, d.msg)
	}
}

func diagUnterminatedString(sp source.Span) lexDiag {
	return lexDiag{diag.LexUnterminatedString, diag.SevError, sp, "unterminated string literal"}
}

func diagUnterminatedChar(sp source.Span) lexDiag {
	return lexDiag{diag.LexUnterminatedChar, diag.SevError, sp, "unterminated character constant"}
}

func diagUnterminatedBlockComment(sp source.Span) lexDiag {
	return lexDiag{diag.LexUnterminatedBlockComment, diag.SevWarning, sp, "unterminated block comment"}
}

func diagBadHeaderName(sp source.Span) lexDiag {
	return lexDiag{diag.LexBadHeaderName, diag.SevError, sp, "malformed header name"}
}

func diagUnknownChar(sp source.Span, b byte) lexDiag {
	return lexDiag{diag.LexUnknownChar, diag.SevError, sp, fmt.Sprintf("unknown character %q", b)}
}
