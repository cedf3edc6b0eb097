package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Decoder.Name != "srt" {
		t.Errorf("default decoder = %q, want srt", cfg.Decoder.Name)
	}
	if len(cfg.Decoder.Options) != 0 {
		t.Errorf("default options should be empty, got %v", cfg.Decoder.Options)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	content := `[decoder]
name = "text"

[decoder.options]
keep_tags = "true"
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "subtext.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Decoder.Name != "text" {
		t.Errorf("decoder = %q, want text", cfg.Decoder.Name)
	}
	if cfg.Decoder.Options["keep_tags"] != "true" {
		t.Errorf("options = %v", cfg.Decoder.Options)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "subtext.toml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Decoder.Name != "srt" {
		t.Errorf("empty file should keep defaults, got %q", cfg.Decoder.Name)
	}
	if cfg.Decoder.Options == nil {
		t.Error("options map should never be nil")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("/nonexistent/subtext.toml"); err == nil {
		t.Error("expected error for missing file")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(path, []byte("decoder = {{"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Decoder.Name = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty decoder name")
	}

	cfg = Default()
	cfg.Decoder.Options[""] = "x"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty option key")
	}
}
