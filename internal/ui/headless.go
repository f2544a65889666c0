package ui

import (
	"context"
	"time"

	"github.com/terassyi/venueview/internal/driver"
)

// HeadlessQueue is the queue view needed when running without a terminal.
type HeadlessQueue interface {
	Queue
	Pushed() int
	Drained() bool
}

// HeadlessOptions configures a Headless runner.
type HeadlessOptions struct {
	Interval time.Duration
	// ExitOnDrain ends Run once the input has ended and every line was consumed.
	ExitOnDrain bool
	// Progress is optional.
	Progress      *DrainProgress
	DriverOptions []driver.Option
}

// Headless ticks the driver on a time.Ticker instead of a Bubble Tea program.
type Headless struct {
	driver      *driver.Driver
	queue       HeadlessQueue
	interval    time.Duration
	exitOnDrain bool
	progress    *DrainProgress
}

// NewHeadless creates a headless runner reading from q.
func NewHeadless(q HeadlessQueue, opts HeadlessOptions) *Headless {
	h := &Headless{
		queue:       q,
		interval:    opts.Interval,
		exitOnDrain: opts.ExitOnDrain,
		progress:    opts.Progress,
	}
	if h.interval <= 0 {
		h.interval = 200 * time.Millisecond
	}
	h.driver = driver.New(q, nil, opts.DriverOptions...)
	return h
}

// Driver returns the embedded driver.
func (h *Headless) Driver() *driver.Driver {
	return h.driver
}

// Run ticks until ctx is done, or with ExitOnDrain until the queue is drained.
// Cancellation is a normal stop and returns nil.
func (h *Headless) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer h.finishProgress()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.driver.Tick()
			h.updateProgress()
			if h.exitOnDrain && h.queue.Drained() {
				return nil
			}
		}
	}
}

func (h *Headless) updateProgress() {
	if h.progress == nil {
		return
	}
	h.progress.Update(h.driver.Stats().Consumed, h.queue.Pushed(), h.queue.Closed())
}

func (h *Headless) finishProgress() {
	if h.progress == nil {
		return
	}
	h.updateProgress()
	h.progress.Close()
}
