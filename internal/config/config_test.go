package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Filter.Dict != nil || cfg.Filter.Strict != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[filter]
dict = "scrabble"
exclude = "qxz"
strict = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Filter.Dict == nil || *cfg.Filter.Dict != "scrabble" {
		t.Fatalf("unexpected dict %v", cfg.Filter.Dict)
	}
	if cfg.Filter.Exclude == nil || *cfg.Filter.Exclude != "qxz" {
		t.Fatalf("unexpected exclude %v", cfg.Filter.Exclude)
	}
	if cfg.Filter.Strict == nil || !*cfg.Filter.Strict {
		t.Fatalf("unexpected strict %v", cfg.Filter.Strict)
	}
	if cfg.Filter.Include != nil || cfg.Filter.Columns != nil {
		t.Fatalf("unset keys should stay nil: %+v", cfg.Filter)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[filter]\ndictionary = \"en\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsUseXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := DefaultConfigPath(), filepath.Join(dir, "words", "config.toml"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got, want := DefaultDictPath("en"), filepath.Join(dir, "words", "dicts", "en.txt"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
