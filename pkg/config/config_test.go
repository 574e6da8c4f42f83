package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/inkwell-fs/inkwell/pkg/archive"
)

func TestLoad_DefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Write minimal config
	configContent := `
logging:
  level: "INFO"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify defaults were applied
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.Files.Root != "." {
		t.Errorf("Expected default root '.', got %q", cfg.Files.Root)
	}
	if cfg.Files.AllowHidden {
		t.Error("Expected allow_hidden to default to false")
	}
	if cfg.Archive.Format != "zip" {
		t.Errorf("Expected default archive format 'zip', got %q", cfg.Archive.Format)
	}
	if cfg.Archive.SizeLimit != archive.DefaultSizeLimit {
		t.Errorf("Expected default size limit %d, got %d", archive.DefaultSizeLimit, cfg.Archive.SizeLimit)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Use a non-existent config file path so the user's real config in
	// ~/.config/inkwell/ is never picked up.
	tmpDir := t.TempDir()
	nonExistentPath := filepath.Join(tmpDir, "nonexistent.yaml")

	cfg, err := Load(nonExistentPath)
	if err != nil {
		t.Fatalf("Expected no error with missing config file, got: %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Archive.Format != "zip" {
		t.Errorf("Expected default archive format 'zip', got %q", cfg.Archive.Format)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	configContent := `
logging:
  level: INFO
  invalid yaml here [[[
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("Expected error with invalid YAML, got nil")
	}
}

func TestLoad_FullConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Build the fixture by marshaling rather than hand-writing YAML
	content, err := yaml.Marshal(map[string]any{
		"logging": map[string]any{
			"level":  "warn",
			"output": "stderr",
		},
		"files": map[string]any{
			"root":         "/srv/notebooks",
			"allow_hidden": true,
		},
		"archive": map[string]any{
			"format":     "tgz",
			"size_limit": 1024,
		},
	})
	if err != nil {
		t.Fatalf("Failed to marshal fixture: %v", err)
	}
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected normalized level 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Expected output 'stderr', got %q", cfg.Logging.Output)
	}
	if cfg.Files.Root != "/srv/notebooks" {
		t.Errorf("Expected root '/srv/notebooks', got %q", cfg.Files.Root)
	}
	if !cfg.Files.AllowHidden {
		t.Error("Expected allow_hidden true")
	}
	if cfg.Archive.Format != "tgz" {
		t.Errorf("Expected archive format 'tgz', got %q", cfg.Archive.Format)
	}
	if cfg.Archive.SizeLimit != 1024 {
		t.Errorf("Expected size limit 1024, got %d", cfg.Archive.SizeLimit)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[logging]
level = "DEBUG"

[archive]
format = "tar.xz"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected level 'DEBUG', got %q", cfg.Logging.Level)
	}
	if cfg.Archive.Format != "tar.xz" {
		t.Errorf("Expected archive format 'tar.xz', got %q", cfg.Archive.Format)
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default log output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.Files.Root != "." {
		t.Errorf("Expected default root '.', got %q", cfg.Files.Root)
	}
	if cfg.Archive.Format != "zip" {
		t.Errorf("Expected default archive format 'zip', got %q", cfg.Archive.Format)
	}
}
