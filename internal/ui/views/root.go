package views

import (
	"github.com/Cyclone1070/shopmate/internal/ui/models"
	"github.com/Cyclone1070/shopmate/internal/ui/services"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State, renderer services.MarkdownRenderer) string {
	sections := []string{
		RenderChat(s),
		RenderInput(s),
		RenderStatus(s),
	}

	// Model popup overlays everything when visible
	if s.ShowModelList {
		popup := RenderModelPopup(s)
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			popup,
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
