package diagfmt

import (
	"strings"
	"testing"

	"pawnfmt/internal/chunk"
	"pawnfmt/internal/diag"
	"pawnfmt/internal/source"
)

func TestPrettyFormatsLocationAndCode(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mode.pwn", []byte("main()\n    foo()\n"))

	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.DelimForcedClose,
		Message:  "block implicitly closed",
		Primary:  source.Span{File: id, Start: 11, End: 14},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	for _, want := range []string{"mode.pwn:2:5", "warning", "delim-forced-close", "block implicitly closed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestChunkDumpMarksVirtuals(t *testing.T) {
	s := chunk.NewStream()
	s.Append(&chunk.Chunk{Kind: chunk.Ident, Text: "foo", Line: 1, Col: 1})
	s.Append(&chunk.Chunk{Kind: chunk.VSemicolon, Line: 1, Col: 4, Flags: chunk.FlagVirtual | chunk.FlagInvisible})

	var sb strings.Builder
	if err := FormatChunksPretty(&sb, s, false); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "VSemicolon") || !strings.Contains(out, "virtual,invisible") {
		t.Errorf("virtual chunk not surfaced:\n%s", out)
	}
}
