package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/terassyi/venueview/internal/driver"
	"github.com/terassyi/venueview/internal/event"
	"github.com/terassyi/venueview/internal/grid"
	"github.com/terassyi/venueview/internal/palette"
)

const (
	maxFeedLines = 5
	maxSlogLines = 5
)

// Queue is the driver's view of the line queue plus the status the viewer
// reports.
type Queue interface {
	driver.Dequeuer
	Len() int
	Closed() bool
}

// ModelOptions configures a ViewerModel.
type ModelOptions struct {
	// Interval between ticks. Each tick consumes at most one line.
	Interval time.Duration
	// Input names the line source for the status line.
	Input string
	// DriverOptions are passed to the embedded driver.
	DriverOptions []driver.Option
}

// ViewerModel is the Bubble Tea model that owns the display driver. It is the
// driver's Renderer: the grid handed to Show is only read from View.
type ViewerModel struct {
	driver   *driver.Driver
	queue    Queue
	interval time.Duration
	input    string

	// grid is a non-owning view set by Show.
	grid     *grid.Grid
	lastCell *event.Coord
	changes  int

	feed      []string
	slogLines []slogLine

	sourceDone  bool
	sourceLines int
	err         error
	quitting    bool
	width       int
}

// NewViewerModel creates a ViewerModel reading from q.
func NewViewerModel(q Queue, opts ModelOptions) *ViewerModel {
	m := &ViewerModel{
		queue:    q,
		interval: opts.Interval,
		input:    opts.Input,
		width:    80,
	}
	if m.interval <= 0 {
		m.interval = 200 * time.Millisecond
	}
	if m.input == "" {
		m.input = "stdin"
	}
	m.driver = driver.New(q, m, opts.DriverOptions...)
	return m
}

// Init implements tea.Model.
func (m *ViewerModel) Init() tea.Cmd {
	return tick(m.interval)
}

// Show implements driver.Renderer.
func (m *ViewerModel) Show(g *grid.Grid) {
	m.grid = g
}

// SetCell implements driver.Renderer.
func (m *ViewerModel) SetCell(row, col int, _ palette.Color) {
	m.lastCell = &event.Coord{Row: row, Col: col}
	m.changes++
}

// Driver returns the embedded driver.
func (m *ViewerModel) Driver() *driver.Driver {
	return m.driver
}

// Err returns the source error that ended the program, if any.
func (m *ViewerModel) Err() error {
	return m.err
}

// FinalView returns the final rendered output for printing after the program
// exits.
func (m *ViewerModel) FinalView() string {
	return m.View()
}

// tick returns a command that sends a tickMsg after d.
func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
