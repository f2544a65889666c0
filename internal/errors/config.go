//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// ConfigError represents a configuration loading, parsing, or validation error.
type ConfigError struct {
	Base Error `json:"error"`

	// File is the path to the configuration file.
	File string `json:"file,omitempty"`

	// Line is the line number where the error occurred.
	Line int `json:"line,omitempty"`

	// Column is the column number where the error occurred.
	Column int `json:"column,omitempty"`

	// Field is the configuration key that failed validation.
	Field string `json:"field,omitempty"`

	// Expected describes the accepted values.
	Expected string `json:"expected,omitempty"`

	// Got is the rejected value.
	Got string `json:"got,omitempty"`
}

// NewConfigError creates a ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeConfigParse,
			Message:  message,
			Cause:    cause,
		},
	}
}

// NewConfigErrorAt creates a ConfigError with file location information.
func NewConfigErrorAt(file string, line, column int, message string, cause error) *ConfigError {
	e := NewConfigError(message, cause)
	e.File = file
	e.Line = line
	e.Column = column
	return e
}

// NewInvalidValueError creates a ConfigError for a value outside the accepted set.
func NewInvalidValueError(field, expected, got string) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeConfigInvalid,
			Message:  fmt.Sprintf("invalid value for %s", field),
		},
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// WithFile sets the file path.
func (e *ConfigError) WithFile(file string) *ConfigError {
	e.File = file
	return e
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%s: got %q, expected %s", e.Base.Message, e.Got, e.Expected)
	}
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
