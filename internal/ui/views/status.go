package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/shopmate/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		// Animate the dots
		dots := strings.Repeat(".", s.DotCount)
		return withModel(s, style.Render(fmt.Sprintf("%s Agent thinking%s", icon, dots)))
	case "fetching":
		icon = s.Spinner.View()
		style = StatusFetchingStyle
	case "error":
		icon = "✗"
		style = StatusErrorStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "ready" && s.StatusPhase != "" {
		status = icon
	}

	return withModel(s, style.Render(status))
}

// withModel appends the current model name, dimmed, to the right of the
// status text.
func withModel(s models.State, left string) string {
	if s.CurrentModel == "" {
		return left
	}
	right := StatusDefaultStyle.Render(s.CurrentModel)
	return fmt.Sprintf("%s  %s", left, right)
}
