package diag

import (
	"slopcc/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single severity-tagged message, optionally anchored to a
// source span.
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Message    string
	Primary    source.Span
	HasPrimary bool
	Notes      []Note
}

// New builds a diagnostic with no span anchor.
func New(sev Severity, code Code, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: msg}
}

// NewSpanned builds a diagnostic anchored at the given span.
func NewSpanned(sev Severity, code Code, span source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity:   sev,
		Code:       code,
		Message:    msg,
		Primary:    span,
		HasPrimary: true,
	}
}

// WithNote appends a note and returns the updated diagnostic.
func (d Diagnostic) WithNote(span source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: span, Msg: msg})
	return d
}
