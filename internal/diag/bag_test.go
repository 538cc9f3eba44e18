package diag

import (
	"testing"

	"pawnfmt/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	d := Diagnostic{Severity: SevWarning, Code: DelimForcedClose}
	if !b.Add(d) || !b.Add(d) {
		t.Fatal("first two adds must succeed")
	}
	if b.Add(d) {
		t.Error("third add should be dropped")
	}
	if b.Len() != 2 {
		t.Errorf("expected len 2, got %d", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	sp := func(start uint32) source.Span { return source.Span{Start: start, End: start + 1} }
	b.Add(Diagnostic{Severity: SevWarning, Code: DelimForcedClose, Primary: sp(9)})
	b.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Primary: sp(3)})
	b.Add(Diagnostic{Severity: SevWarning, Code: DelimForcedClose, Primary: sp(9)})

	b.Sort()
	b.Dedup()

	if b.Len() != 2 {
		t.Fatalf("expected 2 after dedup, got %d", b.Len())
	}
	if b.Items()[0].Primary.Start != 3 {
		t.Errorf("sort order wrong: %+v", b.Items())
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Error("severity queries wrong")
	}
}
