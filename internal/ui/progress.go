package ui

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DrainProgress shows how far the headless driver is through the queued
// input. The total grows while the source is still reading.
type DrainProgress struct {
	mu       sync.Mutex
	progress *mpb.Progress
	bar      *mpb.Bar
	done     bool
}

// NewDrainProgress creates a progress bar writing to w.
func NewDrainProgress(w io.Writer) *DrainProgress {
	p := mpb.New(mpb.WithOutput(w), mpb.WithWidth(40))
	bar := p.AddBar(0,
		mpb.PrependDecorators(
			decor.Name("lines ", decor.WC{W: 6}),
			decor.CountersNoUnit("%d / %d", decor.WC{W: 12}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), " drained"),
		),
	)
	return &DrainProgress{progress: p, bar: bar}
}

// Update sets the bar to consumed of pushed. closed marks the total final;
// the bar completes once everything pushed was consumed.
func (d *DrainProgress) Update(consumed, pushed int, closed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return
	}
	complete := closed && consumed >= pushed
	d.bar.SetTotal(int64(pushed), false)
	d.bar.SetCurrent(int64(consumed))
	if complete {
		d.bar.SetTotal(int64(pushed), true)
		d.done = true
	}
}

// Close stops the bar, aborting it if the input was not drained, and waits
// for the final render.
func (d *DrainProgress) Close() {
	d.mu.Lock()
	if !d.done {
		d.bar.Abort(false)
		d.done = true
	}
	d.mu.Unlock()
	d.progress.Wait()
}
