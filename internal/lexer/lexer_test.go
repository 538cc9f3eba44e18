package lexer_test

import (
	"testing"

	"pawnfmt/internal/chunk"
	"pawnfmt/internal/lexer"
	"pawnfmt/internal/source"
)

type report struct {
	kind string
	span source.Span
}

type testReporter struct {
	reports []report
}

func (r *testReporter) Report(kind string, span source.Span, msg string) {
	r.reports = append(r.reports, report{kind: kind, span: span})
}

func (r *testReporter) kinds() []string {
	out := make([]string, 0, len(r.reports))
	for _, rep := range r.reports {
		out = append(out, rep.kind)
	}
	return out
}

func scanSrc(t *testing.T, src string, opts lexer.Options) *chunk.Stream {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.pwn", []byte(src))
	return lexer.Scan(fs.Get(id), opts)
}

func realChunks(s *chunk.Stream) []*chunk.Chunk {
	var out []*chunk.Chunk
	for c := s.First(); c != nil; c = c.Next() {
		if c.Kind == chunk.Newline || c.Kind == chunk.EOF {
			continue
		}
		out = append(out, c)
	}
	return out
}

func TestScanKindsAndKeywords(t *testing.T) {
	src := "if (count >= 10) return Total_2; else x = 0x1F,"
	want := []struct {
		kind chunk.Kind
		text string
	}{
		{chunk.KwIf, "if"},
		{chunk.LParen, "("},
		{chunk.Ident, "count"},
		{chunk.Operator, ">="},
		{chunk.Number, "10"},
		{chunk.RParen, ")"},
		{chunk.KwReturn, "return"},
		{chunk.Ident, "Total_2"},
		{chunk.Semicolon, ";"},
		{chunk.KwElse, "else"},
		{chunk.Ident, "x"},
		{chunk.Operator, "="},
		{chunk.Number, "0x1F"},
		{chunk.Comma, ","},
	}

	got := realChunks(scanSrc(t, src, lexer.Options{}))
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Text != w.text {
			t.Errorf("chunk %d = %v %q, want %v %q", i, got[i].Kind, got[i].Text, w.kind, w.text)
		}
	}
}

func TestOperatorGreediness(t *testing.T) {
	src := "a >>>= b >>> c >>= d >> e >= f"
	wantOps := []string{">>>=", ">>>", ">>=", ">>", ">="}

	var got []string
	for _, c := range realChunks(scanSrc(t, src, lexer.Options{})) {
		if c.Kind == chunk.Operator {
			got = append(got, c.Text)
		}
	}
	if len(got) != len(wantOps) {
		t.Fatalf("operators = %v, want %v", got, wantOps)
	}
	for i, w := range wantOps {
		if got[i] != w {
			t.Errorf("operator %d = %q, want %q", i, got[i], w)
		}
	}
}

func TestLevelsTrackGrouping(t *testing.T) {
	src := "f(a[i]) { g(); }"
	want := []struct {
		text       string
		level      uint32
		braceLevel uint32
	}{
		{"f", 0, 0},
		{"(", 0, 0},
		{"a", 1, 0},
		{"[", 1, 0},
		{"i", 2, 0},
		{"]", 1, 0},
		{")", 0, 0},
		{"{", 0, 0},
		{"g", 1, 1},
		{"(", 1, 1},
		{")", 1, 1},
		{";", 1, 1},
		{"}", 0, 0},
	}

	got := realChunks(scanSrc(t, src, lexer.Options{}))
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Text != w.text {
			t.Fatalf("chunk %d text = %q, want %q", i, got[i].Text, w.text)
		}
		if got[i].Level != w.level || got[i].BraceLevel != w.braceLevel {
			t.Errorf("%q: level %d/%d, want %d/%d",
				w.text, got[i].Level, got[i].BraceLevel, w.level, w.braceLevel)
		}
	}
}

func TestLineColTracking(t *testing.T) {
	src := "first\n  second third\n"
	want := []struct {
		text string
		line uint32
		col  uint32
	}{
		{"first", 1, 1},
		{"second", 2, 3},
		{"third", 2, 10},
	}

	got := realChunks(scanSrc(t, src, lexer.Options{}))
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Line != w.line || got[i].Col != w.col {
			t.Errorf("%q at %d:%d, want %d:%d",
				w.text, got[i].Line, got[i].Col, w.line, w.col)
		}
	}
}

func TestTabExpansionColumns(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		tabWidth int
		wantCol  uint32
	}{
		{"default width", "\tx", 0, 9},
		{"width four", "\tx", 4, 5},
		{"space then tab", " \tx", 4, 5},
		{"two tabs", "\t\tx", 8, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := realChunks(scanSrc(t, tt.src, lexer.Options{TabWidth: tt.tabWidth}))
			if len(got) != 1 {
				t.Fatalf("chunk count = %d, want 1", len(got))
			}
			if got[0].Col != tt.wantCol {
				t.Errorf("col = %d, want %d", got[0].Col, tt.wantCol)
			}
		})
	}
}

func TestPreprocRegionWithContinuation(t *testing.T) {
	src := "#define MAX \\\n    128\nfoo()\n"
	s := scanSrc(t, src, lexer.Options{})

	wantFlagged := map[string]bool{
		"#define": true,
		"MAX":     true,
		"128":     true,
		"foo":     false,
		"(":       false,
		")":       false,
	}
	for c := s.First(); c != nil; c = c.Next() {
		want, ok := wantFlagged[c.Text]
		if !ok {
			continue
		}
		if c.InPreproc() != want {
			t.Errorf("%q preproc flag = %v, want %v", c.Text, c.InPreproc(), want)
		}
	}

	// The continuation newline stays inside the region; the terminating
	// newline belongs to the surrounding code.
	var newlines []*chunk.Chunk
	for c := s.First(); c != nil; c = c.Next() {
		if c.Kind == chunk.Newline {
			newlines = append(newlines, c)
		}
	}
	if len(newlines) != 3 {
		t.Fatalf("newline count = %d, want 3", len(newlines))
	}
	if !newlines[0].InPreproc() {
		t.Errorf("continuation newline not flagged as preprocessor")
	}
	if newlines[1].InPreproc() {
		t.Errorf("terminating newline flagged as preprocessor")
	}
}

func TestCommentsAndStrings(t *testing.T) {
	src := "x = \"a \\\" b\"; // trailing\n/* block\n   comment */ y"
	want := []struct {
		kind chunk.Kind
		text string
	}{
		{chunk.Ident, "x"},
		{chunk.Operator, "="},
		{chunk.String, `"a \" b"`},
		{chunk.Semicolon, ";"},
		{chunk.Comment, "// trailing"},
		{chunk.Comment, "/* block\n   comment */"},
		{chunk.Ident, "y"},
	}

	got := realChunks(scanSrc(t, src, lexer.Options{}))
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Text != w.text {
			t.Errorf("chunk %d = %v %q, want %v %q", i, got[i].Kind, got[i].Text, w.kind, w.text)
		}
	}
}

func TestUnterminatedLiteralsReported(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantKind string
	}{
		{"string at newline", "s = \"open\nnext", lexer.ReportUnterminatedString},
		{"string at eof", "s = \"open", lexer.ReportUnterminatedString},
		{"char at eof", "c = 'a", lexer.ReportUnterminatedChar},
		{"block comment", "x /* open", lexer.ReportUnterminatedComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &testReporter{}
			scanSrc(t, tt.src, lexer.Options{Reporter: rep})
			kinds := rep.kinds()
			if len(kinds) != 1 || kinds[0] != tt.wantKind {
				t.Errorf("reports = %v, want [%s]", kinds, tt.wantKind)
			}
		})
	}
}

func TestUnknownCharBecomesInvalid(t *testing.T) {
	rep := &testReporter{}
	got := realChunks(scanSrc(t, "a $ b", lexer.Options{Reporter: rep}))

	if len(got) != 3 {
		t.Fatalf("chunk count = %d, want 3", len(got))
	}
	if got[1].Kind != chunk.Invalid || got[1].Text != "$" {
		t.Errorf("middle chunk = %v %q, want Invalid %q", got[1].Kind, got[1].Text, "$")
	}
	kinds := rep.kinds()
	if len(kinds) != 1 || kinds[0] != lexer.ReportUnknownChar {
		t.Errorf("reports = %v, want [%s]", kinds, lexer.ReportUnknownChar)
	}
}

func TestStreamEndsWithEOF(t *testing.T) {
	s := scanSrc(t, "x", lexer.Options{})
	last := s.Last()
	if last == nil || last.Kind != chunk.EOF {
		t.Fatalf("last chunk = %v, want EOF", last)
	}
	if last.Span.Len() != 0 {
		t.Errorf("EOF span length = %d, want 0", last.Span.Len())
	}
}
