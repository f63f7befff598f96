package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultLanguage != "en" {
		t.Errorf("DefaultLanguage = %q, want %q", cfg.DefaultLanguage, "en")
	}
	if cfg.OutputDir != "site" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "site")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Screenshot.Width != 1440 || cfg.Screenshot.Height != 900 {
		t.Errorf("Screenshot viewport = %dx%d, want 1440x900", cfg.Screenshot.Width, cfg.Screenshot.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Portfolio" {
		t.Errorf("Title = %q, want default", cfg.Title)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".folio.yml")
	content := []byte(`
title: My Corner of the Web
author: Ada
default_language: zh-TW
server:
  port: 9000
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Title != "My Corner of the Web" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Author != "Ada" {
		t.Errorf("Author = %q", cfg.Author)
	}
	if cfg.DefaultLanguage != "zh-TW" {
		t.Errorf("DefaultLanguage = %q", cfg.DefaultLanguage)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	// Unset fields keep defaults.
	if cfg.OutputDir != "site" {
		t.Errorf("OutputDir = %q, want default", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_TITLE", "Env Title")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Env Title" {
		t.Errorf("Title = %q, want env override", cfg.Title)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".folio.yml")

	cfg := DefaultConfig()
	cfg.Title = "Round Trip"
	cfg.Server.Port = 3000
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Title != "Round Trip" {
		t.Errorf("Title = %q", loaded.Title)
	}
	if loaded.Server.Port != 3000 {
		t.Errorf("Server.Port = %d", loaded.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Title = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty title")
	}

	cfg = DefaultConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	cfg = DefaultConfig()
	cfg.Screenshot.Width = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative viewport width")
	}
}
