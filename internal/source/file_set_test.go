package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileIDsAreSequential(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("a.c", []byte("int x;"), 0)
	id2 := fs.Add("b.c", []byte("int y;"), 0)
	if id1 != 0 || id2 != 1 {
		t.Errorf("expected sequential ids 0, 1; got %d, %d", id1, id2)
	}

	// Re-registering the same path still mints a fresh ID.
	id3 := fs.Add("a.c", []byte("int z;"), 0)
	if id3 != 2 {
		t.Errorf("expected id 2 for re-added path, got %d", id3)
	}
	latest, ok := fs.GetLatest("a.c")
	if !ok || latest != id3 {
		t.Errorf("expected latest id %d for a.c, got %d (ok=%v)", id3, latest, ok)
	}
	if string(fs.Get(id1).Content) != "int x;" {
		t.Error("older registration must stay intact")
	}
}

func TestGetPanicsOnForeignID(t *testing.T) {
	fs := NewFileSet()
	fs.Add("a.c", []byte("x"), 0)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range file id")
		}
	}()
	fs.Get(FileID(5))
}

func TestStdinHasNoPath(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddStdin([]byte("int main() {}"))
	f := fs.Get(id)
	if f.Path != "" {
		t.Errorf("expected empty path for stdin, got %q", f.Path)
	}
	if f.Name() != "stdin" {
		t.Errorf("expected display name stdin, got %q", f.Name())
	}
}

func TestLoadPropagatesReadError(t *testing.T) {
	fs := NewFileSet()
	missing := filepath.Join(t.TempDir(), "nope.c")
	_, err := fs.Load(missing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %T", err)
	}
	if readErr.Path != missing {
		t.Errorf("expected path %q in error, got %q", missing, readErr.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected wrapped cause to unwrap to os.ErrNotExist")
	}
}

func TestLoadReadsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	if err := os.WriteFile(path, []byte("int main() { return 0; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int main() { return 0; }" {
		t.Errorf("unexpected content %q", f.Content)
	}
	if f.Name() == "stdin" {
		t.Error("loaded file must keep its path as display name")
	}
}

func TestResolveStartOfFile(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.c", []byte("abc\nxy"))
	loc := fs.Get(id).LineCol(0)
	if loc.Line != 1 || loc.Col != 1 {
		t.Errorf("offset 0 must resolve to 1:1, got %d:%d", loc.Line, loc.Col)
	}
}

func TestResolveAfterNewline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.c", []byte("ab\ncd\n"))
	loc := fs.Get(id).LineCol(3)
	if loc.Line != 2 || loc.Col != 1 {
		t.Errorf("offset 3 must resolve to 2:1, got %d:%d", loc.Line, loc.Col)
	}
}

func TestResolveMissingFinalNewline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.c", []byte("ab\ncd"))
	loc := fs.Get(id).LineCol(4)
	if loc.Line != 2 || loc.Col != 2 {
		t.Errorf("offset 4 must resolve to 2:2, got %d:%d", loc.Line, loc.Col)
	}
}

func TestResolveTreatsCRAsOrdinaryByte(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.c", []byte("a\r\nb"))
	loc := fs.Get(id).LineCol(3)
	if loc.Line != 2 || loc.Col != 1 {
		t.Errorf("offset 3 must resolve to 2:1, got %d:%d", loc.Line, loc.Col)
	}
	// The CR itself sits on line 1.
	loc = fs.Get(id).LineCol(1)
	if loc.Line != 1 || loc.Col != 2 {
		t.Errorf("offset 1 must resolve to 1:2, got %d:%d", loc.Line, loc.Col)
	}
}

func TestResolveClampsPastEOF(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.c", []byte("ab\ncd"))
	loc := fs.Get(id).LineCol(100)
	if loc.Line != 2 || loc.Col != 3 {
		t.Errorf("out-of-range offset must clamp to EOF (2:3), got %d:%d", loc.Line, loc.Col)
	}
}

func TestResolveSpanRecord(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddStdin([]byte("abc\ndef"))
	resolved := fs.Resolve(NewSpan(id, 4, 7))
	if resolved.Name != "stdin" {
		t.Errorf("expected name stdin, got %q", resolved.Name)
	}
	if resolved.Line != 2 || resolved.Col != 1 {
		t.Errorf("expected 2:1, got %d:%d", resolved.Line, resolved.Col)
	}
	if resolved.Length != 3 {
		t.Errorf("expected length 3, got %d", resolved.Length)
	}
}

func TestLineIdxShape(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.c", []byte("one\ntwo\n"))
	idx := fs.Get(id).LineIdx
	if len(idx) != 3 || idx[0] != 0 || idx[1] != 4 || idx[2] != 8 {
		t.Errorf("unexpected line index %v", idx)
	}

	// Empty file still has the leading 0 entry.
	id = fs.AddVirtual("b.c", nil)
	idx = fs.Get(id).LineIdx
	if len(idx) != 1 || idx[0] != 0 {
		t.Errorf("unexpected line index for empty file: %v", idx)
	}
}
