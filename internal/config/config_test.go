package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Report.Format != nil || cfg.Report.BarMax != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[report]
format = "json"
encoding = "cp437"
bar-max = 20
save = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	r := cfg.Report
	if r.Format == nil || *r.Format != "json" {
		t.Fatalf("unexpected format: %v", r.Format)
	}
	if r.Encoding == nil || *r.Encoding != "cp437" {
		t.Fatalf("unexpected encoding: %v", r.Encoding)
	}
	if r.BarMax == nil || *r.BarMax != 20 {
		t.Fatalf("unexpected bar-max: %v", r.BarMax)
	}
	if r.Save == nil || !*r.Save {
		t.Fatalf("unexpected save: %v", r.Save)
	}
	if r.TUI != nil || r.Longest != nil {
		t.Fatalf("expected unset fields to stay nil")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[report]\nbars = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "textstat", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "textstat", "textstat.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
