package config

import (
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := GetDefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Fatalf("Default config should validate, got: %v", err)
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "VERBOSE"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for bad log level, got nil")
	}
	if !strings.Contains(err.Error(), "Level") {
		t.Errorf("Expected error to mention Level, got: %v", err)
	}
}

func TestValidate_BadArchiveFormat(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Archive.Format = "rar"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for unsupported archive format, got nil")
	}
	if !strings.Contains(err.Error(), "archive.format") {
		t.Errorf("Expected error to mention archive.format, got: %v", err)
	}
}

func TestValidate_AliasArchiveFormats(t *testing.T) {
	aliases := []string{"zip", "tgz", "tar.gz", "tbz", "tbz2", "tar.bz", "tar.bz2", "txz", "tar.xz"}

	for _, alias := range aliases {
		cfg := GetDefaultConfig()
		cfg.Archive.Format = alias
		if err := Validate(cfg); err != nil {
			t.Errorf("Format alias %q should validate, got: %v", alias, err)
		}
	}
}

func TestValidate_NonPositiveSizeLimit(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Archive.SizeLimit = -1

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected validation error for negative size limit, got nil")
	}
}
