package config

import (
	"fmt"
	"regexp"
	"strings"
)

// maintainerRegex matches "Name <email>".
var maintainerRegex = regexp.MustCompile(`^[^<>]+<[^<>@ ]+@[^<>@ ]+>$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks the values a config would write into a manifest.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Maintainer != "" && !maintainerRegex.MatchString(cfg.Maintainer) {
		errs = append(errs, ValidationError{
			Field:   "maintainer",
			Message: `must have the form "Name <email>"`,
		})
	}

	for _, f := range []struct{ field, value string }{
		{"author", cfg.Author},
		{"license", cfg.License},
	} {
		field, value := f.field, f.value
		if value != "" && strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must not be whitespace only",
			})
		}
		if strings.ContainsAny(value, "\r\n") {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must be a single line",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
