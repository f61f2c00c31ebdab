package views

import (
	"strings"

	"github.com/Cyclone1070/shopmate/internal/ui/models"
	"github.com/Cyclone1070/shopmate/internal/ui/services"
)

// RenderChat renders the message history
func RenderChat(s models.State) string {
	if len(s.Messages) == 0 {
		return "Welcome to the AI Shopping Assistant!\n\nAsk for products (e.g. 'I need running shoes', 'show me all products')."
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport
func FormatChatContent(messages []models.ChatMessage, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		if msg.Role == "user" {
			lines = append(lines, UserMessageStyle.Render("You: "+msg.Content))
		} else {
			// Render assistant messages as markdown
			rendered, err := renderer.Render(msg.Content, width)
			if err != nil {
				// Fallback to plain text
				lines = append(lines, AssistantMessageStyle.Render("Agent: "+msg.Content))
			} else {
				lines = append(lines, AssistantMessageStyle.Render(rendered))
			}
		}
		lines = append(lines, "") // Add spacing
	}
	return strings.Join(lines, "\n")
}
