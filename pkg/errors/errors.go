package errors

import (
	"fmt"
)

// ParseError represents a content or configuration decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures content or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigurationError reports a style lookup for a key the variant registry
// does not know. Fallback names the key that was used instead, if any.
type ConfigurationError struct {
	Kind     string
	Key      string
	Value    string
	Fallback string
}

// NewConfigurationError constructs a ConfigurationError for an unknown key.
func NewConfigurationError(kind, key, value, fallback string) error {
	return &ConfigurationError{Kind: kind, Key: key, Value: value, Fallback: fallback}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("configuration error: unknown %s %q for %s", e.Key, e.Value, e.Kind)
	if e.Fallback != "" {
		msg += fmt.Sprintf(" (using %q)", e.Fallback)
	}
	return msg
}

// ImageError represents a failure to load or decode an image source.
type ImageError struct {
	Src string
	Err error
}

// NewImageError constructs an ImageError for the given source.
func NewImageError(src string, err error) error {
	return &ImageError{Src: src, Err: err}
}

func (e *ImageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Src != "" {
		return fmt.Sprintf("image error [%s]: %v", e.Src, e.Err)
	}
	return fmt.Sprintf("image error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ImageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
