package ui

import (
	"log/slog"
	"time"
)

// tickMsg drives one display step.
type tickMsg time.Time

// sourceDoneMsg signals that the line source reached end of input.
type sourceDoneMsg struct {
	lines int
}

// sourceErrMsg signals that the line source failed.
type sourceErrMsg struct {
	err error
}

// slogMsg delivers a structured log record to the TUI model.
type slogMsg struct {
	level   slog.Level
	message string
}
