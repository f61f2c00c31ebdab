package services

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown content for terminal display.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown using the glamour library.
type GlamourRenderer struct{}

// NewGlamourRenderer creates a new glamour-backed markdown renderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render converts markdown to styled terminal output wrapped to the given width.
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
