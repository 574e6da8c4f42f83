package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/inkwell-fs/inkwell/pkg/archive"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags and custom rules.
//
// Struct tags handle the declarative checks; validateCustomRules covers the
// rules that cannot be expressed in tags, such as archive format aliases.
//
// Note: Log level normalization is handled in ApplyDefaults, not here.
// Validation accepts both uppercase and lowercase log levels.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return validateCustomRules(cfg)
}

// validateCustomRules performs custom validation beyond struct tags.
func validateCustomRules(cfg *Config) error {
	// The archive format accepts aliases (tgz for tar.gz and so on), which
	// a oneof tag would have to duplicate; defer to the archive package.
	if _, err := archive.ParseFormat(cfg.Archive.Format); err != nil {
		return fmt.Errorf("archive.format: %w", err)
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// Return the first validation error with context
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
