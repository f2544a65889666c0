// Package queue provides the unbounded line FIFO shared by the line source
// and the display driver.
package queue

import (
	"sync"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Lines is an unbounded FIFO of raw input lines, safe for one producer and
// one consumer running concurrently.
type Lines struct {
	mu     sync.Mutex
	q      *linkedlistqueue.Queue
	pushed int
	closed bool
}

// New creates an empty queue.
func New() *Lines {
	return &Lines{q: linkedlistqueue.New()}
}

// Push appends a line. Pushing to a closed queue is a no-op.
func (l *Lines) Push(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.q.Enqueue(line)
	l.pushed++
}

// Pop removes and returns the oldest line. ok is false when the queue is empty.
func (l *Lines) Pop() (line string, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.q.Dequeue()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len returns the number of queued lines.
func (l *Lines) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Size()
}

// Pushed returns the total number of lines ever enqueued.
func (l *Lines) Pushed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pushed
}

// Close marks the end of input. Lines already queued can still be popped.
func (l *Lines) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

// Closed reports whether Close was called.
func (l *Lines) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Drained reports whether the queue is closed and empty.
func (l *Lines) Drained() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed && l.q.Empty()
}
