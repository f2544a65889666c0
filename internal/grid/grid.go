// Package grid holds the per-seat display state of a venue.
package grid

import (
	"fmt"

	"github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/event"
	"github.com/terassyi/venueview/internal/palette"
)

// Cell is the display state of one seat.
type Cell struct {
	Color palette.Color
	// Writes counts how many times the cell was set after creation.
	Writes int
}

// Grid is a rows×cols matrix of cells. Its shape is fixed at creation.
// A Grid is not safe for concurrent use; it has a single writer.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// MaxCells bounds the number of seats of a single grid.
const MaxCells = 1 << 20

// CheckSize reports whether a rows×cols grid can be created. A venue above
// MaxCells seats yields a *errors.BoundsError.
func CheckSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", rows, cols)
	}
	// Division keeps the check free of rows*cols overflow.
	if rows > MaxCells/cols {
		return errors.NewVenueTooLargeError(rows, cols, MaxCells)
	}
	return nil
}

// New creates a grid with every cell set to initial.
func New(rows, cols int, initial palette.Color) (*Grid, error) {
	if err := CheckSize(rows, cols); err != nil {
		return nil, err
	}

	// One backing array, sliced per row.
	backing := make([]Cell, rows*cols)
	for i := range backing {
		backing[i].Color = initial
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i], backing = backing[:cols:cols], backing[cols:]
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of seats per row.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether (row, col) addresses a seat of the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Check returns a BoundsError for the first coordinate outside the grid.
func (g *Grid) Check(coords ...event.Coord) error {
	for _, c := range coords {
		if !g.Contains(c.Row, c.Col) {
			return errors.NewOutOfBoundsError(c.Row, c.Col, g.rows, g.cols)
		}
	}
	return nil
}

// Set changes the color of one seat.
func (g *Grid) Set(row, col int, c palette.Color) error {
	if !g.Contains(row, col) {
		return errors.NewOutOfBoundsError(row, col, g.rows, g.cols)
	}
	cell := &g.cells[row][col]
	cell.Color = c
	cell.Writes++
	return nil
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.Contains(row, col) {
		return Cell{}, errors.NewOutOfBoundsError(row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Color returns the color at (row, col), or the zero color when out of range.
func (g *Grid) Color(row, col int) palette.Color {
	if !g.Contains(row, col) {
		return palette.Color{}
	}
	return g.cells[row][col].Color
}

// Snapshot returns a copy of every cell color, row-major.
func (g *Grid) Snapshot() [][]palette.Color {
	out := make([][]palette.Color, g.rows)
	for r, row := range g.cells {
		out[r] = make([]palette.Color, g.cols)
		for c, cell := range row {
			out[r][c] = cell.Color
		}
	}
	return out
}

// Equal reports whether both grids have the same shape and cell colors.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].Color != other.cells[r][c].Color {
				return false
			}
		}
	}
	return true
}

// Count returns how many seats currently show color c.
func (g *Grid) Count(c palette.Color) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.Color == c {
				n++
			}
		}
	}
	return n
}
