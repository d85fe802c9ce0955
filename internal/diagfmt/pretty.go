// Package diagfmt renders diagnostics and token streams for the CLI.
// It owns all formatting concerns; the diag and token packages stay
// presentation-free.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"slopcc/internal/diag"
	"slopcc/internal/source"
)

// PrettyOpts controls diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	noteColor = color.New(color.FgCyan, color.Bold)
	locColor  = color.New(color.Bold)
)

// Pretty renders every diagnostic in the bag:
//
//	<name>:<line>:<col>: <severity> <code>: <message>
//	  <source line>
//	  ^~~~
//
// Call bag.Sort() first for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
		for _, note := range d.Notes {
			printHeader(w, note.Span, true, diag.SevNote, diag.UnknownCode, note.Msg, fs, opts)
			printContext(w, note.Span, fs, opts)
		}
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	printHeader(w, d.Primary, d.HasPrimary, d.Severity, d.Code, d.Message, fs, opts)
	if d.HasPrimary {
		printContext(w, d.Primary, fs, opts)
	}
}

func printHeader(w io.Writer, span source.Span, hasSpan bool, sev diag.Severity, code diag.Code, msg string, fs *source.FileSet, opts PrettyOpts) {
	if hasSpan {
		loc := fs.Resolve(span)
		fmt.Fprintf(w, "%s: ", paint(opts, locColor, fmt.Sprintf("%s:%d:%d", loc.Name, loc.Line, loc.Col)))
	}
	sevText := paint(opts, severityColor(sev), sev.String())
	if code != diag.UnknownCode {
		fmt.Fprintf(w, "%s %s: %s\n", sevText, code, msg)
	} else {
		fmt.Fprintf(w, "%s: %s\n", sevText, msg)
	}
}

// printContext shows the source line of the span start with a caret
// underline sized to the span (clipped to the line end).
func printContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	loc := f.LineCol(span.Start)
	raw := lineText(f, loc.Line)

	fmt.Fprintf(w, "  %s\n", expandTabs(raw))

	// Pad using display width so the caret lands under the right column
	// even with tabs or wide runes before it.
	prefix := raw
	if int(loc.Col)-1 < len(raw) {
		prefix = raw[:loc.Col-1]
	}
	pad := runewidth.StringWidth(expandTabs(prefix))

	length := int(span.Len())
	if length == 0 {
		length = 1
	}
	if remaining := len(raw) - int(loc.Col) + 1; remaining > 0 && length > remaining {
		length = remaining
	}
	marker := "^"
	if length > 1 {
		marker += strings.Repeat("~", length-1)
	}
	if opts.Color {
		marker = paint(opts, errColor, marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

// lineText extracts the 1-based line from the file content, newline excluded.
func lineText(f *source.File, line uint32) string {
	if line == 0 || int(line) > len(f.LineIdx) {
		return ""
	}
	start := f.LineIdx[line-1]
	end := source.BytePos(len(f.Content))
	if int(line) < len(f.LineIdx) {
		end = f.LineIdx[line] - 1 // strip the '\n'
	}
	return string(f.Content[start:end])
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return noteColor
	}
}

func paint(opts PrettyOpts, c *color.Color, s string) string {
	if !opts.Color {
		return s
	}
	return c.Sprint(s)
}
