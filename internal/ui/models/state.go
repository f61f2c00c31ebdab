package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// ChatMessage is one rendered entry in the chat log.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// State holds everything the Bubble Tea view needs to render.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	Messages []ChatMessage

	Width  int
	Height int

	StatusPhase   string
	StatusMessage string
	CurrentModel  string
	DotCount      int

	// CanSubmit is true while the orchestrator is waiting for input
	CanSubmit bool

	ModelList      []string
	ShowModelList  bool
	ModelListIndex int
}
