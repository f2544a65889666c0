package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m.handleTick()

	case slogMsg:
		return m.handleSlogMsg(msg)

	case sourceDoneMsg:
		m.sourceDone = true
		m.sourceLines = msg.lines
		return m, nil

	case sourceErrMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick consumes at most one line, then schedules the next tick. The
// next tick is only scheduled from here, so ticks never overlap.
func (m *ViewerModel) handleTick() (tea.Model, tea.Cmd) {
	res := m.driver.Tick()
	if res.Consumed && res.Line != "" {
		m.feed = append(m.feed, res.Line)
		if len(m.feed) > maxFeedLines {
			m.feed = m.feed[len(m.feed)-maxFeedLines:]
		}
	}
	return m, tick(m.interval)
}

// handleSlogMsg appends a slog record to the log panel, keeping at most maxSlogLines.
func (m *ViewerModel) handleSlogMsg(msg slogMsg) (tea.Model, tea.Cmd) {
	m.slogLines = append(m.slogLines, slogLine(msg))
	if len(m.slogLines) > maxSlogLines {
		m.slogLines = m.slogLines[len(m.slogLines)-maxSlogLines:]
	}
	return m, nil
}
