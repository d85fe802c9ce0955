package diag

import (
	"testing"

	"slopcc/internal/source"
)

func TestHasErrorsTracksErrorSeverity(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevWarning, UnknownCode, "warn"))
	if bag.HasErrors() {
		t.Error("no errors expected yet")
	}
	if !bag.HasWarnings() {
		t.Error("expected warnings present")
	}

	bag.Add(New(SevError, UnknownCode, "err"))
	if !bag.HasErrors() {
		t.Error("expected errors present")
	}
}

func TestBagPreservesInsertionOrder(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevNote, UnknownCode, "first"))
	bag.Add(New(SevError, UnknownCode, "second"))
	bag.Add(New(SevWarning, UnknownCode, "third"))

	items := bag.Items()
	if len(items) != 3 || bag.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Message != want {
			t.Errorf("item %d: expected %q, got %q", i, want, items[i].Message)
		}
	}
}

func TestBagRespectsLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(New(SevError, UnknownCode, "a")) {
		t.Error("first add must succeed")
	}
	if !bag.Add(New(SevError, UnknownCode, "b")) {
		t.Error("second add must succeed")
	}
	if bag.Add(New(SevError, UnknownCode, "c")) {
		t.Error("third add must be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("expected 2 items, got %d", bag.Len())
	}
}

func TestEmptyBag(t *testing.T) {
	bag := NewBag(10)
	if !bag.Empty() || bag.Len() != 0 || bag.HasErrors() {
		t.Error("fresh bag must be empty with no errors")
	}
}

func TestMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(New(SevError, UnknownCode, "a"))
	b := NewBag(2)
	b.Add(New(SevWarning, UnknownCode, "b1"))
	b.Add(New(SevNote, UnknownCode, "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("expected 3 items after merge, got %d", a.Len())
	}
}

func TestSortOrdersBySpanThenSeverity(t *testing.T) {
	bag := NewBag(10)
	late := NewSpanned(SevWarning, UnknownCode, source.NewSpan(0, 10, 12), "late")
	early := NewSpanned(SevError, LexUnknownChar, source.NewSpan(0, 2, 3), "early")
	free := New(SevNote, UnknownCode, "unanchored")
	bag.Add(late)
	bag.Add(early)
	bag.Add(free)

	bag.Sort()
	items := bag.Items()
	if items[0].Message != "unanchored" || items[1].Message != "early" || items[2].Message != "late" {
		t.Errorf("unexpected order: %q, %q, %q", items[0].Message, items[1].Message, items[2].Message)
	}
}

func TestBagReporterCollects(t *testing.T) {
	bag := NewBag(10)
	var r Reporter = BagReporter{Bag: bag}
	sp := source.NewSpan(0, 0, 4)
	r.Report(LexUnterminatedString, SevError, sp, "unterminated string literal")

	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if !d.HasPrimary || d.Primary != sp || d.Code != LexUnterminatedString {
		t.Errorf("unexpected diagnostic %+v", d)
	}
}
