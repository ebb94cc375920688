package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Expected port %s, got %s", DefaultPort, cfg.Port)
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{DefaultAllowedOrigin}) {
		t.Errorf("Expected default origin, got %v", cfg.AllowedOrigins)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Expected :8080, got %s", cfg.Addr())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("Unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.GinMode != "release" {
		t.Errorf("Expected release mode, got %s", cfg.GinMode)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "70000"} {
		t.Setenv("PORT", port)
		if _, err := Load(""); err == nil {
			t.Errorf("Expected error for port %q", port)
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "http://env.test")
	os.Unsetenv("PORT")

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=7070\nALLOWED_ORIGINS=http://file.test\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("Expected port from file, got %s", cfg.Port)
	}
	// variables already set win over the file
	if !slices.Equal(cfg.AllowedOrigins, []string{"http://env.test"}) {
		t.Errorf("Expected environment origin, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	t.Setenv("PORT", "8081")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}
