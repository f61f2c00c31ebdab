package models

import "encoding/json"

// Message roles as they appear in the transcript.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents a single turn in the conversation transcript.
// The transcript is append-only and owned by the orchestrator for the
// lifetime of one session.
type Message struct {
	Role    string
	Content string

	// For assistant messages that request tool execution
	ToolCalls []ToolCall

	// For tool messages carrying a result back to the model.
	// ToolCallID must match the ID of a ToolCall emitted in a prior
	// assistant message.
	ToolCallID string
	Name       string
}

// ToolCall represents a structured tool invocation requested by the model.
// Args is the raw argument payload exactly as the model produced it; it is
// decoded once at dispatch time.
type ToolCall struct {
	ID   string
	Name string
	Args json.RawMessage
}

// SystemMessage builds a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds a plain assistant message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ToolMessage builds a tool-result message correlated to the originating
// tool call.
func ToolMessage(callID, name, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: callID, Name: name}
}
