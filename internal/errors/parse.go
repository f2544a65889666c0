//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// ParseError represents an input line that does not match the line grammar.
type ParseError struct {
	Base Error `json:"error"`

	// Line is the raw input line.
	Line string `json:"line"`

	// Token is the offending token, if one could be identified.
	Token string `json:"token,omitempty"`

	// Expected describes what the grammar wanted at that position.
	Expected string `json:"expected,omitempty"`
}

// NewMalformedLineError creates a ParseError for a line with missing tokens.
func NewMalformedLineError(line, expected string) *ParseError {
	return &ParseError{
		Base: Error{
			Category: CategoryParse,
			Code:     CodeMalformedLine,
			Message:  "malformed line",
		},
		Line:     line,
		Expected: expected,
	}
}

// NewBadCoordinateError creates a ParseError for a token that is not "<row>x<col>".
func NewBadCoordinateError(line, token string, cause error) *ParseError {
	return &ParseError{
		Base: Error{
			Category: CategoryParse,
			Code:     CodeBadCoordinate,
			Message:  fmt.Sprintf("invalid seat coordinate %q", token),
			Cause:    cause,
		},
		Line:     line,
		Token:    token,
		Expected: "<row>x<col>",
	}
}

// NewBadNumberError creates a ParseError for a token that is not an integer.
func NewBadNumberError(line, token string, cause error) *ParseError {
	return &ParseError{
		Base: Error{
			Category: CategoryParse,
			Code:     CodeBadNumber,
			Message:  fmt.Sprintf("invalid number %q", token),
			Cause:    cause,
		},
		Line:     line,
		Token:    token,
		Expected: "integer",
	}
}

// WithExpected replaces the expected-form description.
func (e *ParseError) WithExpected(expected string) *ParseError {
	e.Expected = expected
	return e
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
