package tui

import (
	"github.com/charmbracelet/lipgloss"

	"staletrack/internal/article"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)

	logTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	statusNeutralStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#AAAAAA"))

	statusCurrentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4CAF50")).
				Bold(true)

	statusOutdatedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B")).
				Bold(true)
)

// statusStyle maps the tri-state classifier onto a message style.
func statusStyle(status article.Status) lipgloss.Style {
	switch status {
	case article.StatusCurrent:
		return statusCurrentStyle
	case article.StatusOutdated:
		return statusOutdatedStyle
	default:
		return statusNeutralStyle
	}
}
