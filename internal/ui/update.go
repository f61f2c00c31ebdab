package ui

import (
	"strings"
	"time"

	"github.com/Cyclone1070/shopmate/internal/ui/models"
	"github.com/Cyclone1070/shopmate/internal/ui/services"
	"github.com/Cyclone1070/shopmate/internal/ui/views"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	renderer services.MarkdownRenderer

	// Channels for communication with orchestrator
	inputReq      <-chan inputRequest
	inputResp     chan<- string
	statusChan    <-chan statusMsg
	messageChan   <-chan string
	modelListChan <-chan []string
	modelNameChan <-chan string

	// UI -> Orchestrator
	commandChan chan<- UICommand

	// Ready signal
	readyChan chan<- struct{}
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	channels *UIChannels,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
) BubbleTeaModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about products... ('exit' or 'quit' to leave)"
	ti.Focus()

	vp := viewport.New(80, 20)

	return BubbleTeaModel{
		state: models.State{
			Input:    ti,
			Viewport: vp,
			Spinner:  spinnerFactory(),
			Messages: []models.ChatMessage{},
		},
		renderer:      renderer,
		inputReq:      channels.InputReq,
		inputResp:     channels.InputResp,
		statusChan:    channels.StatusChan,
		messageChan:   channels.MessageChan,
		modelListChan: channels.ModelListChan,
		modelNameChan: channels.ModelNameChan,
		commandChan:   channels.CommandChan,
		readyChan:     channels.ReadyChan,
	}
}

// Internal messages
type tickMsg time.Time
type inputRequestMsg inputRequest
type statusUpdateMsg statusMsg
type messageReceivedMsg string
type modelListReceivedMsg []string
type modelNameReceivedMsg string

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	// Signal that UI is ready
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		tick(),
		listenForInputRequests(m.inputReq),
		listenForStatus(m.statusChan),
		listenForMessages(m.messageChan),
		listenForModelList(m.modelListChan),
		listenForModelName(m.modelNameChan),
	)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = msg.Height - 4 // Reserve space for input and status
		m.updateViewport()

	case tickMsg:
		m.state.DotCount = (m.state.DotCount + 1) % 4
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, tea.Batch(cmd, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case inputRequestMsg:
		m.state.CanSubmit = true
		return m, listenForInputRequests(m.inputReq)

	case statusUpdateMsg:
		m.state.StatusPhase = msg.phase
		m.state.StatusMessage = msg.message
		return m, listenForStatus(m.statusChan)

	case messageReceivedMsg:
		m.state.Messages = append(m.state.Messages, models.ChatMessage{
			Role:    "assistant",
			Content: string(msg),
		})
		m.updateViewport()
		return m, listenForMessages(m.messageChan)

	case modelListReceivedMsg:
		m.state.ModelList = []string(msg)
		m.state.ShowModelList = true
		m.state.ModelListIndex = 0
		return m, listenForModelList(m.modelListChan)

	case modelNameReceivedMsg:
		m.state.CurrentModel = string(msg)
		return m, listenForModelName(m.modelNameChan)
	}

	// Update input
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state, m.renderer)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle model popup navigation
	if m.state.ShowModelList {
		switch msg.String() {
		case "up", "k":
			if m.state.ModelListIndex > 0 {
				m.state.ModelListIndex--
			}
		case "down", "j":
			if m.state.ModelListIndex < len(m.state.ModelList)-1 {
				m.state.ModelListIndex++
			}
		case "enter":
			if m.state.ModelListIndex < len(m.state.ModelList) {
				m.commandChan <- UICommand{
					Type: "switch_model",
					Args: map[string]string{
						"model": m.state.ModelList[m.state.ModelListIndex],
					},
				}
			}
			m.state.ShowModelList = false
		case "esc":
			m.state.ShowModelList = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		if m.state.CanSubmit {
			input := m.state.Input.Value()

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			if input != "" {
				m.state.Messages = append(m.state.Messages, models.ChatMessage{
					Role:    "user",
					Content: input,
				})
				m.updateViewport()
			}

			// Send to orchestrator
			m.inputResp <- input
			m.state.Input.SetValue("")
			m.state.CanSubmit = false
		}
	}

	return m, nil
}

// handleCommand handles slash commands
func (m BubbleTeaModel) handleCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "/models":
		m.commandChan <- UICommand{Type: "list_models"}
		m.state.Input.SetValue("")
	case "/help":
		m.state.Messages = append(m.state.Messages, models.ChatMessage{
			Role:    "assistant",
			Content: "Available commands:\n- /models - List and switch models\n- /help - Show this help\n\nType 'exit' or 'quit' to end the session.",
		})
		m.updateViewport()
		m.state.Input.SetValue("")
	}

	return m, nil
}

// updateViewport updates the viewport content
func (m *BubbleTeaModel) updateViewport() {
	content := views.FormatChatContent(m.state.Messages, m.state.Width-4, m.renderer)
	m.state.Viewport.SetContent(content)
	m.state.Viewport.GotoBottom()
}

// Helper commands for listening to channels
func listenForInputRequests(ch <-chan inputRequest) tea.Cmd {
	return func() tea.Msg {
		return inputRequestMsg(<-ch)
	}
}

func listenForStatus(ch <-chan statusMsg) tea.Cmd {
	return func() tea.Msg {
		return statusUpdateMsg(<-ch)
	}
}

func listenForMessages(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return messageReceivedMsg(<-ch)
	}
}

func listenForModelList(ch <-chan []string) tea.Cmd {
	return func() tea.Msg {
		return modelListReceivedMsg(<-ch)
	}
}

func listenForModelName(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return modelNameReceivedMsg(<-ch)
	}
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
