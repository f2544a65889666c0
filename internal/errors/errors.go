// Package errors provides structured error types for venueview.
// These errors carry rich context information that can be formatted
// for human-readable CLI output or machine-readable JSON.
//
//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "errors"

// Category represents the classification of an error.
type Category string

const (
	CategoryInput  Category = "input"
	CategoryParse  Category = "parse"
	CategoryBounds Category = "bounds"
	CategoryConfig Category = "config"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Input errors (E1xx)
	CodeInputOpen Code = "E101"
	CodeInputRead Code = "E102"

	// Parse errors (E2xx)
	CodeMalformedLine Code = "E201"
	CodeBadCoordinate Code = "E202"
	CodeBadNumber     Code = "E203"

	// Bounds errors (E3xx)
	CodeOutOfBounds Code = "E301"
	CodeNoVenue     Code = "E302"
	CodeVenueSize   Code = "E303"

	// Config errors (E4xx)
	CodeConfigParse   Code = "E401"
	CodeConfigInvalid Code = "E402"
)

// Error is the base error type for venueview.
// It provides structured information that can be formatted for CLI output.
type Error struct {
	// Category classifies the error type.
	Category Category `json:"category"`

	// Code is a machine-readable error code.
	Code Code `json:"code,omitempty"`

	// Message is a short description of the error.
	Message string `json:"message"`

	// Details contains additional context information.
	Details map[string]any `json:"details,omitempty"`

	// Hint provides actionable advice for the user.
	Hint string `json:"hint,omitempty"`

	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error.
// It matches if the target is an *Error with the same Code (if both have codes).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Code != "" && t.Code != "" {
		return e.Code == t.Code
	}
	return e.Category == t.Category && e.Message == t.Message
}

// WithHint sets the hint and returns the error for chaining.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// WithDetail adds a detail and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given category and message.
func New(category Category, message string) *Error {
	return &Error{
		Category: category,
		Message:  message,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(category Category, message string, cause error) *Error {
	return &Error{
		Category: category,
		Message:  message,
		Cause:    cause,
	}
}

// IsRecoverable reports whether err describes a dropped line rather than a
// condition that should stop the viewer. Parse and bounds errors are
// recoverable; input and config errors are not.
func IsRecoverable(err error) bool {
	var parseErr *ParseError
	var boundsErr *BoundsError
	return errors.As(err, &parseErr) || errors.As(err, &boundsErr)
}

// CodeOf returns the code of the first structured error in err's chain, or
// an empty Code.
func CodeOf(err error) Code {
	var (
		inputErr  *InputError
		parseErr  *ParseError
		boundsErr *BoundsError
		configErr *ConfigError
		baseErr   *Error
	)
	switch {
	case errors.As(err, &inputErr):
		return inputErr.Base.Code
	case errors.As(err, &parseErr):
		return parseErr.Base.Code
	case errors.As(err, &boundsErr):
		return boundsErr.Base.Code
	case errors.As(err, &configErr):
		return configErr.Base.Code
	case errors.As(err, &baseErr):
		return baseErr.Code
	}
	return ""
}
