//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// InputError represents a failure to open or read the input stream.
// It is the one fatal condition while the viewer is running.
type InputError struct {
	Base Error `json:"error"`

	// Path is the input file path, empty for standard input.
	Path string `json:"path,omitempty"`

	// Line is the number of lines read before the failure.
	Line int `json:"line,omitempty"`
}

// NewInputOpenError creates an InputError for a file that cannot be opened.
func NewInputOpenError(path string, cause error) *InputError {
	return &InputError{
		Base: Error{
			Category: CategoryInput,
			Code:     CodeInputOpen,
			Message:  "failed to open input",
			Cause:    cause,
		},
		Path: path,
	}
}

// NewInputReadError creates an InputError for a read failure after line lines.
func NewInputReadError(path string, line int, cause error) *InputError {
	return &InputError{
		Base: Error{
			Category: CategoryInput,
			Code:     CodeInputRead,
			Message:  "failed to read input",
			Cause:    cause,
		},
		Path: path,
		Line: line,
	}
}

// Source returns a display name for the input ("stdin" when no path is set).
func (e *InputError) Source() string {
	if e.Path == "" {
		return "stdin"
	}
	return e.Path
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
