package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateHome keeps a config file in the real home directory out of the search.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_NoFile(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	content := `format: json
log_format: json
no_color: true
baseline: verbosity-baseline.json
`
	if err := os.WriteFile(filepath.Join(dir, ".verbosity.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected format json, got %q", cfg.Format)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected log_format json, got %q", cfg.LogFormat)
	}
	if !cfg.NoColor {
		t.Fatal("expected no_color true")
	}
	if cfg.Baseline != "verbosity-baseline.json" {
		t.Fatalf("expected baseline path, got %q", cfg.Baseline)
	}
}

func TestLoad_YMLExtension(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".verbosity.yml"), []byte(`format: text`), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "text" {
		t.Fatalf("expected format text, got %q", cfg.Format)
	}
}

func TestLoad_YAMLTakesPrecedence(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".verbosity.yaml"), []byte("format: first"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".verbosity.yml"), []byte("format: second"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "first" {
		t.Fatalf("expected .yaml to take precedence, got %q", cfg.Format)
	}
}

func TestLoad_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, ".verbosity.yaml"), []byte("log_format: json"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected home config to be used, got %q", cfg.LogFormat)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".verbosity.yaml"), []byte(":::invalid"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
