package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// TUILogHandler is a slog.Handler that forwards log records to a Bubble Tea
// program via Send(). Only records at or above the configured level are sent.
// In the viewer the target is a Mailbox, since records are also emitted from
// inside Update.
type TUILogHandler struct {
	target sender
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

// NewTUILogHandler creates a handler that sends slogMsg to the given sender.
func NewTUILogHandler(target sender, level slog.Leveler) *TUILogHandler {
	return &TUILogHandler{
		target: target,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TUILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats the record on one line and sends it to the TUI.
func (h *TUILogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(oneLine(r.Message))

	for _, a := range h.attrs {
		writeAttr(&b, h.qualifiedKey(a.Key), a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.qualifiedKey(a.Key), a.Value)
		return true
	})

	h.target.Send(slogMsg{
		level:   r.Level,
		message: b.String(),
	})
	return nil
}

func writeAttr(b *strings.Builder, key string, v slog.Value) {
	fmt.Fprintf(b, " %s=%q", key, v.Resolve().String())
}

// oneLine keeps the log panel one row per record.
func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// WithAttrs returns a new handler with the given attributes.
func (h *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &TUILogHandler{
		target: h.target,
		level:  h.level,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new handler with the given group name.
func (h *TUILogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &TUILogHandler{
		target: h.target,
		level:  h.level,
		attrs:  h.attrs,
		group:  newGroup,
	}
}

// qualifiedKey prepends the group prefix to a key.
func (h *TUILogHandler) qualifiedKey(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}
