package ui

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

const mailboxSize = 256

// sender abstracts tea.Program.Send for testing.
type sender interface {
	Send(msg tea.Msg)
}

// SourceReporter forwards the outcome of the line source to the program.
type SourceReporter struct {
	target sender
}

// NewSourceReporter creates a reporter that forwards to the given sender.
func NewSourceReporter(target sender) *SourceReporter {
	return &SourceReporter{target: target}
}

// Done reports the end of input after n lines.
func (r *SourceReporter) Done(n int) {
	r.target.Send(sourceDoneMsg{lines: n})
}

// Fail reports a fatal source error. The program quits after receiving it.
func (r *SourceReporter) Fail(err error) {
	r.target.Send(sourceErrMsg{err: err})
}

// Mailbox is a non-blocking sender. tea.Program.Send blocks until the event
// loop receives the message, so it must not be called from inside Update;
// the driver logs from inside Update. Mailbox buffers messages and forwards
// them from its own goroutine once started, dropping messages when the
// buffer is full.
type Mailbox struct {
	ch      chan tea.Msg
	dropped atomic.Int64
	done    chan struct{}

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewMailbox creates a mailbox. Messages sent before Start are buffered.
func NewMailbox() *Mailbox {
	return &Mailbox{
		ch:   make(chan tea.Msg, mailboxSize),
		done: make(chan struct{}),
	}
}

// Start begins forwarding to target. Later calls do nothing.
func (mb *Mailbox) Start(target sender) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.started || mb.closed {
		return
	}
	mb.started = true
	go func() {
		defer close(mb.done)
		for msg := range mb.ch {
			target.Send(msg)
		}
	}()
}

// Send queues msg without blocking. Messages sent after Close are dropped.
func (mb *Mailbox) Send(msg tea.Msg) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	if mb.closed {
		mb.dropped.Add(1)
		return
	}
	select {
	case mb.ch <- msg:
	default:
		mb.dropped.Add(1)
	}
}

// Dropped returns the number of messages that could not be queued.
func (mb *Mailbox) Dropped() int64 {
	return mb.dropped.Load()
}

// Close stops the mailbox after forwarding what is already queued.
func (mb *Mailbox) Close() {
	mb.mu.Lock()
	if mb.closed {
		mb.mu.Unlock()
		return
	}
	mb.closed = true
	close(mb.ch)
	started := mb.started
	mb.mu.Unlock()
	if started {
		<-mb.done
	}
}
