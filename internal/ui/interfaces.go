package ui

import "context"

// UICommand is a command sent from the UI to the application (e.g. a slash
// command typed by the user).
type UICommand struct {
	Type string
	Args map[string]string
}

// UserInterface defines the contract for all user interactions.
// It follows a Read/Write pattern for clarity.
//
// Context Usage:
// ReadInput accepts a context.Context for cancellation support. If the
// session is cancelled, implementations should return immediately with
// context.Canceled.
type UserInterface interface {
	// ReadInput blocks until the user submits one line of text
	ReadInput(ctx context.Context, prompt string) (string, error)

	// WriteStatus displays ephemeral status updates (e.g., "Thinking...")
	WriteStatus(phase string, message string)

	// WriteMessage displays the assistant's actual text responses
	WriteMessage(content string)

	// WriteModelList shows the model picker with the given model names
	WriteModelList(models []string)

	// SetModel updates the model name shown in the status bar
	SetModel(model string)

	// Commands returns the channel of UI-originated commands
	Commands() <-chan UICommand

	// Ready returns a channel that is closed when the UI accepts requests
	Ready() <-chan struct{}

	// Start runs the UI and blocks until it exits
	Start() error

	// Quit asks the UI to shut down
	Quit()
}
