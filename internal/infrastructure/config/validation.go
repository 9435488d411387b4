package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with custom validation rules
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(validateLogging, LoggingConfig{})
	v.RegisterStructValidation(validateAI, AIConfig{})

	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// validateLogging requires a file path when logging to a file
func validateLogging(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(LoggingConfig)
	if cfg.Output == "file" && cfg.FilePath == "" {
		sl.ReportError(cfg.FilePath, "FilePath", "file_path", "required_with_file_output", "")
	}
}

// validateAI keeps the first colonist cheaper than the following ones
func validateAI(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(AIConfig)
	if cfg.FirstColonistThreshold > cfg.NextColonistThreshold {
		sl.ReportError(cfg.FirstColonistThreshold, "FirstColonistThreshold", "first_colonist_threshold", "ltefield", "NextColonistThreshold")
	}
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
