package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/terassyi/venueview/internal/driver"
	"github.com/terassyi/venueview/internal/grid"
	"github.com/terassyi/venueview/internal/palette"
)

// slogLine is one entry of the log panel.
type slogLine struct {
	level   slog.Level
	message string
}

// View implements tea.Model.
func (m *ViewerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("venueview"))
	b.WriteString(statusStyle.Render(" · " + m.input))
	b.WriteString("\n\n")

	if m.grid == nil {
		b.WriteString(waitingStyle.Render(m.waitingText()))
		b.WriteByte('\n')
	} else {
		renderGrid(&b, m, m.width)
		b.WriteByte('\n')
		b.WriteString(renderLegend(m.driver.Palette(), m.grid))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteByte('\n')

	renderFeed(&b, m.feed, m.width)
	renderLogPanel(&b, m.slogLines, m.width)

	if !m.quitting {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: quit"))
	}
	return b.String()
}

func (m *ViewerModel) waitingText() string {
	if rows, cols, ok := m.driver.Venue(); ok {
		return fmt.Sprintf("Venue %dx%d declared, waiting for the first seat…", rows, cols)
	}
	return "Waiting for a Venue line…"
}

// statusLine summarizes queue and driver counters.
func (m *ViewerModel) statusLine() string {
	st := m.driver.Stats()
	input := "reading"
	switch {
	case m.sourceDone && m.queue.Len() == 0:
		input = "done"
	case m.sourceDone, m.queue.Closed():
		input = "ended"
	}
	s := fmt.Sprintf("consumed %d · queued %d · dropped %d · input %s",
		st.Consumed, m.queue.Len(), st.Dropped, input)
	if m.lastCell != nil {
		s += fmt.Sprintf(" · last %s", m.lastCell)
	}
	return s
}

// renderGrid draws each seat as a two-column colored block. Columns that do
// not fit in width are elided.
func renderGrid(b *strings.Builder, m *ViewerModel, width int) {
	g := m.grid
	cols := g.Cols()
	elided := false
	if width > 0 {
		if fit := (width - 2) / cellWidth; fit < cols {
			cols = max(fit, 1)
			elided = true
		}
	}
	blank := strings.Repeat(" ", cellWidth)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < cols; c++ {
			b.WriteString(cellStyle(g.Color(r, c)).Render(blank))
		}
		if elided {
			b.WriteString("…")
		}
		b.WriteByte('\n')
	}
}

// renderLegend renders the state scheme as swatches, each with the number of
// seats currently showing its color.
func renderLegend(p palette.Palette, g *grid.Grid) string {
	entries := p.Scheme.Entries()
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		label := e.State.String()
		if g != nil {
			label += fmt.Sprintf(" (%d)", g.Count(e.Color))
		}
		parts = append(parts, cellStyle(e.Color).Render(strings.Repeat(" ", cellWidth))+" "+label)
	}
	return strings.Join(parts, "  ")
}

// renderFeed renders the most recently consumed lines.
func renderFeed(b *strings.Builder, lines []string, width int) {
	if len(lines) == 0 {
		return
	}
	for _, line := range lines {
		if width > 4 && lipgloss.Width(line) > width-2 {
			line = truncate(line, width-3) + "…"
		}
		b.WriteString(feedStyle.Render("> " + line))
		b.WriteByte('\n')
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// renderLogPanel renders the slog log panel if there are log lines.
func renderLogPanel(b *strings.Builder, lines []slogLine, width int) {
	if len(lines) == 0 {
		return
	}

	sep := "── Logs " + strings.Repeat("─", max(width-8, 0))
	b.WriteByte('\n')
	b.WriteString(logSeparatorStyle.Render(sep))
	b.WriteByte('\n')

	for _, line := range lines {
		label := slogLevelLabel(line.level)
		text := fmt.Sprintf(" %s %s", label, line.message)
		b.WriteString(slogLineStyle(line.level, text))
		b.WriteByte('\n')
	}
}

// slogLevelLabel returns a styled short label for the log level.
func slogLevelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return errorLogStyle.Render("ERROR")
	case level >= slog.LevelWarn:
		return warnLogStyle.Render("WARN")
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return debugLogStyle.Render("DEBUG")
	}
}

// slogLineStyle applies color to the entire log line based on level.
func slogLineStyle(level slog.Level, text string) string {
	switch {
	case level >= slog.LevelError:
		return errorLogStyle.Render(text)
	case level >= slog.LevelWarn:
		return warnLogStyle.Render(text)
	case level >= slog.LevelInfo:
		return text
	default:
		return debugLogStyle.Render(text)
	}
}

// Summary renders the plain end-of-run counters, shared with headless mode.
func Summary(st driver.Stats) string {
	return fmt.Sprintf("consumed=%d applied=%d ignored=%d dropped=%d",
		st.Consumed, st.Applied, st.Ignored, st.Dropped)
}
