package token

import (
	"slopcc/internal/source"
)

// Token is a single preprocessing token: a kind plus the span that covers
// it. The span is authoritative for recovering the token's text.
type Token struct {
	Kind Kind
	Span source.Span
}

// New builds a token over the given span.
func New(kind Kind, span source.Span) Token {
	return Token{Kind: kind, Span: span}
}

// Text recovers the token's text from the file content its span points into.
func (t Token) Text(content []byte) string {
	return string(t.Span.Bytes(content))
}

// IsPunct reports whether the token is a punctuator.
func (t Token) IsPunct() bool {
	return t.Kind >= Hash && t.Kind <= CaretAssign
}
