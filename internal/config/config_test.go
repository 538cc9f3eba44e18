package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"pawnfmt/internal/config"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[format]\ntab_width = 4\n")

	nested := filepath.Join(root, "gamemodes", "modes")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := config.Find(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !ok || got != want {
		t.Errorf("found %q (ok=%v), want %q", got, ok, want)
	}
}

func TestResolveDefaultsWithoutManifest(t *testing.T) {
	cfg, path, err := config.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty for defaults", path)
	}
	if cfg.Format.TabWidth != 8 {
		t.Errorf("default tab width = %d, want 8", cfg.Format.TabWidth)
	}
	if len(cfg.Files.Extensions) == 0 {
		t.Errorf("default extensions empty")
	}
}

func TestLoadOverridesAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[format]\ntab_width = 4\nadd_semicolons = true\n\n[files]\nextensions = [\".pwn\"]\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format.TabWidth != 4 || !cfg.Format.AddSemicolons {
		t.Errorf("unexpected format config: %+v", cfg.Format)
	}
	if len(cfg.Files.Extensions) != 1 || cfg.Files.Extensions[0] != ".pwn" {
		t.Errorf("unexpected extensions: %v", cfg.Files.Extensions)
	}
}

func TestLoadRejectsBadTabWidth(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[format]\ntab_width = -2\n")

	if _, err := config.Load(path); err == nil {
		t.Fatalf("negative tab width accepted")
	}
}
