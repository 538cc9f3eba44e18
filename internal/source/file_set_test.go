package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.p", []byte("version 1"), 0)
	id2 := fs.Add("test.p", []byte("version 2"), 0)

	if id1 == id2 {
		t.Fatalf("expected distinct FileIDs, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("test.p")
	if !ok {
		t.Fatal("expected file to exist")
	}
	if latest != id2 {
		t.Errorf("expected latest id %d, got %d", id2, latest)
	}

	if got := string(fs.Get(id1).Content); got != "version 1" {
		t.Errorf("first version content changed: %q", got)
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.p", []byte("a\nbb\nccc"))
	f := fs.Get(id)
	if f == nil {
		t.Fatal("file not found")
	}
	if len(f.LineIdx) != 2 {
		t.Fatalf("expected 2 newline offsets, got %d", len(f.LineIdx))
	}
	if f.LineIdx[0] != 1 || f.LineIdx[1] != 4 {
		t.Errorf("unexpected line index %v", f.LineIdx)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestCRLFNormalization(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("crlf.p", []byte("a\r\nb\r\nc"))
	f := fs.Get(id)
	if string(f.Content) != "a\nb\nc" {
		t.Errorf("CRLF not normalized: %q", f.Content)
	}
}

func TestBOMRemoval(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("bom.p", []byte("\xEF\xBB\xBFmain()"))
	f := fs.Get(id)
	if string(f.Content) != "main()" {
		t.Errorf("BOM not removed: %q", f.Content)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.p", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline itself
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("off %d: expected %+v, got %+v", tt.off, tt.want, start)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.p")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb" {
		t.Errorf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}
