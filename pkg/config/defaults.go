package config

import (
	"strings"

	"github.com/inkwell-fs/inkwell/pkg/archive"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Zero values (0, "", false) are replaced with defaults; explicit values are
// preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyFilesDefaults(&cfg.Files)
	applyArchiveDefaults(&cfg.Archive)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

func applyFilesDefaults(cfg *FilesConfig) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
}

func applyArchiveDefaults(cfg *ArchiveConfig) {
	if cfg.Format == "" {
		cfg.Format = string(archive.DefaultFormat)
	}
	if cfg.SizeLimit == 0 {
		cfg.SizeLimit = archive.DefaultSizeLimit
	}
}

// GetDefaultConfig returns a configuration with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
