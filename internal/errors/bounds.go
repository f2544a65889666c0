//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// BoundsError represents a seat reference outside the declared venue, or a
// seat reference before any venue was declared.
type BoundsError struct {
	Base Error `json:"error"`

	Row  int `json:"row"`
	Col  int `json:"col"`
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// NewOutOfBoundsError creates a BoundsError for (row, col) in a rows×cols venue.
func NewOutOfBoundsError(row, col, rows, cols int) *BoundsError {
	return &BoundsError{
		Base: Error{
			Category: CategoryBounds,
			Code:     CodeOutOfBounds,
			Message:  fmt.Sprintf("seat %dx%d is outside venue %dx%d", row, col, rows, cols),
		},
		Row:  row,
		Col:  col,
		Rows: rows,
		Cols: cols,
	}
}

// NewNoVenueError creates a BoundsError for a seat event that arrived before
// the venue size was known.
func NewNoVenueError(row, col int) *BoundsError {
	return &BoundsError{
		Base: Error{
			Category: CategoryBounds,
			Code:     CodeNoVenue,
			Message:  fmt.Sprintf("seat %dx%d referenced before venue was declared", row, col),
			Hint:     `the input must start with a "Venue <rows>x<cols>" line`,
		},
		Row: row,
		Col: col,
	}
}

// NewVenueTooLargeError creates a BoundsError for a venue whose seat count
// exceeds max.
func NewVenueTooLargeError(rows, cols, max int) *BoundsError {
	return &BoundsError{
		Base: Error{
			Category: CategoryBounds,
			Code:     CodeVenueSize,
			Message:  fmt.Sprintf("venue %dx%d exceeds %d seats", rows, cols, max),
			Hint:     "split the venue into sections of at most that many seats",
		},
		Rows: rows,
		Cols: cols,
	}
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *BoundsError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *BoundsError) Is(target error) bool {
	t, ok := target.(*BoundsError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
