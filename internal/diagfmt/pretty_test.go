package diagfmt

import (
	"strings"
	"testing"

	"slopcc/internal/diag"
	"slopcc/internal/lexer"
	"slopcc/internal/source"
)

func TestPrettyRendersLocationAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.c", []byte("int x = \"abc\nint y;\n"))

	bag := diag.NewBag(10)
	lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if !bag.HasErrors() {
		t.Fatal("expected a lex error to render")
	}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: false})
	out := sb.String()

	if !strings.Contains(out, "main.c:1:9") {
		t.Errorf("expected location main.c:1:9 in output:\n%s", out)
	}
	if !strings.Contains(out, "error") || !strings.Contains(out, "unterminated string literal") {
		t.Errorf("expected severity and message in output:\n%s", out)
	}
	if !strings.Contains(out, "^~~~") {
		t.Errorf("expected caret underline in output:\n%s", out)
	}
}

func TestPrettyUnanchoredDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.UnknownCode, "something general"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: false})
	out := sb.String()
	if !strings.Contains(out, "warning: something general") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte("int x;"))
	tokens := lexer.Tokenize(fs.Get(id), lexer.Options{})

	var sb strings.Builder
	if err := FormatTokensPretty(&sb, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"Ident", `"int"`, "Semi", "EOF", "t.c:1:1"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.c", []byte("1+2"))
	tokens := lexer.Tokenize(fs.Get(id), lexer.Options{})

	var sb strings.Builder
	if err := FormatTokensJSON(&sb, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{`"kind": "PpNumber"`, `"kind": "Plus"`, `"kind": "EOF"`, `"text": "+"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in JSON output:\n%s", want, out)
		}
	}
}
