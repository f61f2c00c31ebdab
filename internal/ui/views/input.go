package views

import (
	"github.com/Cyclone1070/shopmate/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderInput renders the input bar. The border dims while the agent is
// working, since submissions are ignored until CanSubmit flips back.
func RenderInput(s models.State) string {
	style := InputStyle
	if !s.CanSubmit {
		style = style.BorderForeground(lipgloss.Color("241"))
	}
	return style.Render(s.Input.View())
}
