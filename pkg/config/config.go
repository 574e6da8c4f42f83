// Package config loads and validates the inkwell configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (INKWELL_*)
//  2. Configuration file (YAML or TOML)
//  3. Default values
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config captures all configurable aspects of the inkwell tools.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Files controls how paths are resolved and which entries may be touched
	Files FilesConfig `mapstructure:"files"`

	// Archive controls directory archiving behavior
	Archive ArchiveConfig `mapstructure:"archive"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required"`
}

// FilesConfig controls path resolution and hidden-entry policy.
type FilesConfig struct {
	// Root is the directory relative paths are resolved against
	Root string `mapstructure:"root" validate:"required"`

	// AllowHidden permits operating on hidden files and directories.
	// When false, commands refuse hidden targets.
	AllowHidden bool `mapstructure:"allow_hidden"`
}

// ArchiveConfig controls directory archiving.
type ArchiveConfig struct {
	// Format is the default archive format
	// Valid values: zip, tgz, tar.gz, tbz, tbz2, tar.bz, tar.bz2, txz, tar.xz
	Format string `mapstructure:"format" validate:"required"`

	// SizeLimit is the maximum total size in bytes of a directory that may
	// be archived
	SizeLimit int64 `mapstructure:"size_limit" validate:"gt=0"`
}

// Load loads configuration from file, environment, and defaults.
//
// Parameters:
//   - configPath: Path to config file (empty string uses default location)
//
// Returns the loaded and validated configuration, or an error describing
// what failed to load or validate.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures viper with environment variables and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the INKWELL_ prefix and underscores
	// Example: INKWELL_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("INKWELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is acceptable - defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to the
// current directory if the home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "inkwell")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "inkwell")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
