package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/terassyi/venueview/internal/palette"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // light cyan
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))           // gray
	waitingStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))             // yellow
	feedStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))           // light gray
	warnLogStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))             // yellow
	errorLogStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))             // red
	debugLogStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))           // gray
	logSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))           // gray
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cellWidth         = 2
)

// cellStyle returns a style that paints a seat in c.
func cellStyle(c palette.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
}
