package views

import "github.com/charmbracelet/lipgloss"

var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("14")). // Cyan
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10")) // Green

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")) // Dim gray

	StatusThinkingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("13")) // Magenta

	StatusFetchingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")) // Yellow

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")). // Red
				Bold(true)

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // Green

	PopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	PopupSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("14"))
)
