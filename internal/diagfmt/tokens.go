package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"slopcc/internal/source"
	"slopcc/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	File  uint32 `json:"file"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty writes one line per token with its resolved location
// and recovered text.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		loc := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%4d: %-13s at %s:%d:%d", i+1, tok.Kind, loc.Name, loc.Line, loc.Col); err != nil {
			return err
		}
		if tok.Kind != token.EOF {
			content := fs.Get(tok.Span.File).Content
			if _, err := fmt.Fprintf(w, " %q", tok.Text(content)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		entry := TokenOutput{
			Kind:  tok.Kind.String(),
			File:  uint32(tok.Span.File),
			Start: uint32(tok.Span.Start),
			End:   uint32(tok.Span.End),
		}
		if tok.Kind != token.EOF {
			entry.Text = tok.Text(fs.Get(tok.Span.File).Content)
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
