// Package audit writes per-session transcripts of consumed and dropped lines.
package audit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// File names inside a session directory.
const (
	TranscriptFile = "transcript.log"
	DroppedFile    = "dropped.log"
	lockFile       = "audit.lock"
)

// sessionLayout sorts lexically in chronological order.
const sessionLayout = "20060102T150405.000"

// Store records every consumed line and every dropped line of one viewer
// session. Files are created on the first write; a session with no input
// leaves no directory behind.
type Store struct {
	baseDir    string
	sessionID  string
	sessionDir string
	input      string

	mu         sync.Mutex
	dirCreated bool
	transcript *os.File
	dropped    *os.File
	lines      int
	drops      int
	closed     bool
}

// NewStore creates a Store with a new session under baseDir. input names the
// line source and is written into the file headers.
func NewStore(baseDir, input string) (*Store, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("audit directory is empty")
	}
	sessionID := strings.Replace(time.Now().Format(sessionLayout), ".", "", 1)
	return &Store{
		baseDir:    baseDir,
		sessionID:  sessionID,
		sessionDir: filepath.Join(baseDir, sessionID),
		input:      input,
	}, nil
}

// ensureSessionDir creates the session directory if it doesn't exist yet.
// Must be called with s.mu held.
func (s *Store) ensureSessionDir() error {
	if s.dirCreated {
		return nil
	}
	if err := os.MkdirAll(s.sessionDir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	s.dirCreated = true
	return nil
}

// open lazily creates one of the session files with its header.
// Must be called with s.mu held.
func (s *Store) open(f **os.File, name, title string) bool {
	if *f != nil {
		return true
	}
	if s.closed {
		return false
	}
	if err := s.ensureSessionDir(); err != nil {
		slog.Warn("failed to create audit session directory", "error", err)
		return false
	}
	path := filepath.Join(s.sessionDir, name)
	file, err := os.Create(path)
	if err != nil {
		slog.Warn("failed to create audit file", "path", path, "error", err)
		return false
	}
	if _, err := file.WriteString(header(title, s.input)); err != nil {
		slog.Warn("failed to write audit header", "path", path, "error", err)
	}
	*f = file
	return true
}

// RecordLine appends a consumed line to the transcript.
func (s *Store) RecordLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open(&s.transcript, TranscriptFile, "transcript") {
		return
	}
	s.lines++
	if _, err := fmt.Fprintln(s.transcript, line); err != nil {
		slog.Warn("failed to write transcript", "error", err)
	}
}

// RecordDropped appends a dropped line and the reason it was dropped.
func (s *Store) RecordDropped(line string, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open(&s.dropped, DroppedFile, "dropped lines") {
		return
	}
	s.drops++
	if _, err := fmt.Fprintf(s.dropped, "%q\t%v\n", line, cause); err != nil {
		slog.Warn("failed to write dropped line", "error", err)
	}
}

// Counts returns the number of recorded and dropped lines.
func (s *Store) Counts() (lines, dropped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines, s.drops
}

// SessionDir returns the path to the current session directory.
func (s *Store) SessionDir() string {
	return s.sessionDir
}

// Close flushes and closes the session files. Later records are discarded.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	var errs []error
	for _, f := range []*os.File{s.transcript, s.dropped} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.transcript, s.dropped = nil, nil
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Cleanup removes old session directories, keeping the most recent
// keepSessions. The store's own session is never removed and counts toward
// keepSessions. Concurrent viewers sharing baseDir serialize on a lock file;
// if another process holds it, Cleanup does nothing.
func (s *Store) Cleanup(keepSessions int) error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}

	lock := flock.New(filepath.Join(s.baseDir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire audit lock: %w", err)
	}
	if !locked {
		slog.Debug("audit cleanup skipped, lock held by another process")
		return nil
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			slog.Warn("failed to release audit lock", "error", err)
		}
	}()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("failed to read audit directory: %w", err)
	}

	keep := keepSessions
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if e.Name() == s.sessionID {
			keep--
			continue
		}
		dirs = append(dirs, e.Name())
	}
	keep = max(keep, 0)
	if len(dirs) <= keep {
		return nil
	}

	sort.Strings(dirs)
	for _, name := range dirs[:len(dirs)-keep] {
		if err := os.RemoveAll(filepath.Join(s.baseDir, name)); err != nil {
			return fmt.Errorf("failed to remove old session %s: %w", name, err)
		}
	}
	return nil
}

func header(title, input string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# venueview %s\n", title)
	if input == "" {
		input = "stdin"
	}
	fmt.Fprintf(&b, "# Input: %s\n", input)
	fmt.Fprintf(&b, "# Timestamp: %s\n", time.Now().Format(time.RFC3339))
	b.WriteByte('\n')
	return b.String()
}
