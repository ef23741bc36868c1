package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().Faint(true)

	scrollStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")) // red
)
