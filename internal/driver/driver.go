// Package driver applies queued venue lines to the seat grid, one line per tick.
//
// The driver has two states. It starts Uninitialized and moves to Running the
// first time a grid is needed: on the Venue line itself in eager mode, or on
// the first Seat/SeatHold line in lazy mode. Running is terminal; the grid
// shape never changes afterwards.
//
// Malformed lines and out-of-range seats never stop the driver. They are
// logged, recorded, counted as dropped, and the next tick proceeds normally.
package driver

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/event"
	"github.com/terassyi/venueview/internal/grid"
	"github.com/terassyi/venueview/internal/palette"
)

// State is the driver lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateRunning
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "uninitialized"
}

// ShowMode selects when the grid is first built and shown.
type ShowMode int

const (
	// ShowLazy builds the grid on the first Seat or SeatHold line.
	ShowLazy ShowMode = iota
	// ShowEager builds the grid as soon as the Venue line is applied.
	ShowEager
)

const (
	showLazyName  = "lazy"
	showEagerName = "eager"
)

// String implements fmt.Stringer.
func (m ShowMode) String() string {
	if m == ShowEager {
		return showEagerName
	}
	return showLazyName
}

// ParseShowMode resolves a show mode from its configuration name.
func ParseShowMode(name string) (ShowMode, error) {
	switch strings.ToLower(name) {
	case showLazyName:
		return ShowLazy, nil
	case showEagerName:
		return ShowEager, nil
	default:
		return ShowLazy, errors.NewInvalidValueError("show", showLazyName+", "+showEagerName, name)
	}
}

// Dequeuer supplies raw lines. Pop reports false when nothing is queued.
type Dequeuer interface {
	Pop() (string, bool)
}

// Renderer displays the grid. It holds a non-owning view of the grid passed
// to Show and is told about every cell change.
type Renderer interface {
	Show(g *grid.Grid)
	SetCell(row, col int, c palette.Color)
}

// Recorder receives an audit trail of consumed and dropped lines.
type Recorder interface {
	RecordLine(line string)
	RecordDropped(line string, err error)
}

// Stats counts what the driver did with consumed lines.
type Stats struct {
	Consumed int
	Applied  int
	Ignored  int
	Dropped  int
}

// TickResult describes the outcome of one tick.
type TickResult struct {
	// Consumed is false when the queue was empty and the tick did nothing.
	Consumed bool
	Line     string
	Event    event.Event
	// Err is the reason the line was dropped, if it was.
	Err error
}

// Driver consumes lines from a Dequeuer and mutates the grid. It is not safe
// for concurrent use; all ticks must come from one goroutine.
type Driver struct {
	queue    Dequeuer
	renderer Renderer
	palette  palette.Palette
	show     ShowMode
	echo     io.Writer
	logger   *slog.Logger
	recorder Recorder

	state      State
	venueKnown bool
	rows       int
	cols       int
	grid       *grid.Grid
	stats      Stats
}

// Option configures a Driver.
type Option func(*Driver)

// WithPalette sets the level policy and state scheme.
func WithPalette(p palette.Palette) Option {
	return func(d *Driver) { d.palette = p }
}

// WithShowMode sets when the grid is first shown.
func WithShowMode(m ShowMode) Option {
	return func(d *Driver) { d.show = m }
}

// WithEcho sets where consumed lines are echoed.
func WithEcho(w io.Writer) Option {
	return func(d *Driver) { d.echo = w }
}

// WithLogger sets the logger for dropped-line diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithRecorder sets the audit recorder.
func WithRecorder(r Recorder) Option {
	return func(d *Driver) { d.recorder = r }
}

// New creates a Driver in the Uninitialized state. A nil renderer is allowed
// for headless use.
func New(q Dequeuer, r Renderer, opts ...Option) *Driver {
	d := &Driver{
		queue:    q,
		renderer: r,
		palette:  palette.Default(),
		show:     ShowLazy,
		echo:     io.Discard,
		logger:   slog.Default(),
		recorder: nopRecorder{},
	}
	if d.renderer == nil {
		d.renderer = nopRenderer{}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Tick dequeues at most one line and applies it. An empty queue is a no-op.
func (d *Driver) Tick() TickResult {
	line, ok := d.queue.Pop()
	if !ok {
		return TickResult{}
	}
	return d.consume(line)
}

func (d *Driver) consume(line string) TickResult {
	d.stats.Consumed++
	if line != "" {
		fmt.Fprintln(d.echo, line)
	}
	d.recorder.RecordLine(line)

	res := TickResult{Consumed: true, Line: line}
	ev, err := event.Parse(line)
	if err == nil {
		res.Event = ev
		err = d.Apply(ev)
	}
	if err != nil {
		d.drop(line, err)
		res.Err = err
	}
	return res
}

// Apply applies a parsed event to the grid.
func (d *Driver) Apply(ev event.Event) error {
	switch ev.Kind {
	case event.KindVenue:
		return d.applyVenue(ev.Venue)
	case event.KindSeat:
		return d.applySeat(ev.Seat)
	case event.KindHold:
		return d.applyHold(ev.Hold)
	default:
		d.stats.Ignored++
		return nil
	}
}

func (d *Driver) applyVenue(v *event.Venue) error {
	if d.state == StateRunning {
		d.logger.Warn("venue already shown, ignoring resize",
			"shown", fmt.Sprintf("%dx%d", d.rows, d.cols),
			"requested", fmt.Sprintf("%dx%d", v.Rows, v.Cols))
		d.stats.Ignored++
		return nil
	}
	if err := grid.CheckSize(v.Rows, v.Cols); err != nil {
		return err
	}

	d.rows, d.cols = v.Rows, v.Cols
	d.venueKnown = true
	d.stats.Applied++
	if d.show == ShowEager {
		return d.start()
	}
	return nil
}

func (d *Driver) applySeat(s *event.Seat) error {
	if err := d.ensureRunning(s.Coord); err != nil {
		return err
	}
	c := d.palette.LevelColor(s.Level, d.rows, d.cols)
	if err := d.grid.Set(s.Row, s.Col, c); err != nil {
		return err
	}
	d.renderer.SetCell(s.Row, s.Col, c)
	d.stats.Applied++
	return nil
}

func (d *Driver) applyHold(h *event.Hold) error {
	if err := d.ensureRunning(h.Seats[0]); err != nil {
		return err
	}
	// Validate every seat first so a hold is applied entirely or not at all.
	if err := d.grid.Check(h.Seats...); err != nil {
		return err
	}
	c := d.palette.StateColor(h.State)
	for _, seat := range h.Seats {
		// Check above guarantees Set succeeds.
		_ = d.grid.Set(seat.Row, seat.Col, c)
		d.renderer.SetCell(seat.Row, seat.Col, c)
	}
	d.stats.Applied++
	return nil
}

// ensureRunning builds the grid on demand. at is the seat that needs it and
// is only used for the error report.
func (d *Driver) ensureRunning(at event.Coord) error {
	if d.state == StateRunning {
		return nil
	}
	if !d.venueKnown {
		return errors.NewNoVenueError(at.Row, at.Col)
	}
	return d.start()
}

// start transitions Uninitialized -> Running.
func (d *Driver) start() error {
	g, err := grid.New(d.rows, d.cols, d.palette.Scheme.Available)
	if err != nil {
		return err
	}
	d.grid = g
	d.state = StateRunning
	d.renderer.Show(g)
	d.logger.Debug("venue shown", "rows", d.rows, "cols", d.cols, "mode", d.show.String())
	return nil
}

func (d *Driver) drop(line string, err error) {
	d.stats.Dropped++
	d.logger.Warn("dropped line", "line", line, "error", err.Error())
	d.recorder.RecordDropped(line, err)
}

// State returns the lifecycle state.
func (d *Driver) State() State { return d.state }

// Grid returns the grid, or nil while Uninitialized.
func (d *Driver) Grid() *grid.Grid { return d.grid }

// Venue returns the declared dimensions and whether a venue was declared.
func (d *Driver) Venue() (rows, cols int, ok bool) {
	return d.rows, d.cols, d.venueKnown
}

// Stats returns the counters so far.
func (d *Driver) Stats() Stats { return d.stats }

// Palette returns the palette in use.
func (d *Driver) Palette() palette.Palette { return d.palette }

type nopRenderer struct{}

func (nopRenderer) Show(*grid.Grid)                 {}
func (nopRenderer) SetCell(int, int, palette.Color) {}

type nopRecorder struct{}

func (nopRecorder) RecordLine(string)           {}
func (nopRecorder) RecordDropped(string, error) {}
