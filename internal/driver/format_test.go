package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pawnfmt/internal/source"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFormatFilePassthrough(t *testing.T) {
	dir := t.TempDir()
	src := "main()\n    foo()\n"
	path := writeFile(t, dir, "a.pwn", src)

	res, err := FormatFile(source.NewFileSet(), path, Options{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(res.Output) != src {
		t.Errorf("passthrough changed bytes:\n got %q\nwant %q", res.Output, src)
	}
	if res.Changed {
		t.Errorf("passthrough reported a change")
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestFormatFileAddSemicolons(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.pwn", "main()\n    foo()\n")

	res, err := FormatFile(source.NewFileSet(), path, Options{AddSemicolons: true})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "main()\n    foo();\n"
	if string(res.Output) != want {
		t.Errorf("got %q, want %q", res.Output, want)
	}
	if !res.Changed {
		t.Errorf("semicolon insertion not reported as a change")
	}

	// The output must be a fixed point.
	again := writeFile(t, dir, "b.pwn", want)
	res2, err := FormatFile(source.NewFileSet(), again, Options{AddSemicolons: true})
	if err != nil {
		t.Fatalf("second format: %v", err)
	}
	if res2.Changed || string(res2.Output) != want {
		t.Errorf("formatting its own output changed it: %q", res2.Output)
	}
}

func TestFormatPathsDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.pwn", "main()\n    foo()\n")
	writeFile(t, dir, "a.pwn", "other()\n    bar()\n")
	writeFile(t, dir, "skip.txt", "not source\n")

	files, err := CollectFiles([]string{dir}, []string{".pwn"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.pwn" || filepath.Base(files[1]) != "b.pwn" {
		t.Fatalf("unexpected file list: %v", files)
	}

	_, results, err := FormatPaths(context.Background(), files, nil, Options{Jobs: 2})
	if err != nil {
		t.Fatalf("format paths: %v", err)
	}
	for i, res := range results {
		if res.Path != files[i] {
			t.Errorf("result %d path %q, want %q", i, res.Path, files[i])
		}
		if res.Bag == nil || res.Bag.HasErrors() {
			t.Errorf("result %d has errors", i)
		}
	}
}

func TestFormatPathsReportsLoadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pwn")
	_, results, err := FormatPaths(context.Background(), []string{missing}, nil, Options{})
	if err != nil {
		t.Fatalf("format paths: %v", err)
	}
	if len(results) != 1 || !results[0].Bag.HasErrors() {
		t.Fatalf("load failure not surfaced as a diagnostic")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("pawnfmt-test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := t.TempDir()
	path := writeFile(t, dir, "a.pwn", "main()\n    foo()\n")

	_, first, err := FormatPaths(context.Background(), []string{path}, cache, Options{AddSemicolons: true})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	_, second, err := FormatPaths(context.Background(), []string{path}, cache, Options{AddSemicolons: true})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if string(first[0].Output) != string(second[0].Output) {
		t.Errorf("cached output diverged")
	}
	if first[0].Changed != second[0].Changed {
		t.Errorf("cached change flag diverged")
	}

	// Different options must miss the cache and reformat.
	_, third, err := FormatPaths(context.Background(), []string{path}, cache, Options{})
	if err != nil {
		t.Fatalf("third run: %v", err)
	}
	if string(third[0].Output) == string(first[0].Output) {
		t.Errorf("options change did not alter the output")
	}
}
