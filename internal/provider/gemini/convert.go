package gemini

import (
	"encoding/json"

	"github.com/Cyclone1070/shopmate/internal/orchestrator/models"
	provider "github.com/Cyclone1070/shopmate/internal/provider/models"
	"google.golang.org/genai"
)

// toGenaiContents converts the transcript to Gemini Content format. System
// messages are not part of the returned contents; the first one is returned
// separately for use as the system instruction.
func toGenaiContents(history []models.Message) ([]*genai.Content, *genai.Content) {
	contents := make([]*genai.Content, 0, len(history))
	var system *genai.Content

	for _, msg := range history {
		if msg.Role == models.RoleSystem {
			if system == nil && msg.Content != "" {
				system = &genai.Content{Parts: []*genai.Part{genai.NewPartFromText(msg.Content)}}
			}
			continue
		}
		if content := messageToGenaiContent(msg); content != nil {
			contents = append(contents, content)
		}
	}

	return contents, system
}

// messageToGenaiContent converts a single transcript message.
func messageToGenaiContent(msg models.Message) *genai.Content {
	switch msg.Role {
	case models.RoleAssistant:
		parts := make([]*genai.Part, 0, len(msg.ToolCalls)+1)
		if msg.Content != "" {
			parts = append(parts, genai.NewPartFromText(msg.Content))
		}
		for _, call := range msg.ToolCalls {
			args := map[string]any{}
			// Args round-trip from a prior response; a payload that never
			// decoded is still forwarded so the model sees its own request.
			if err := json.Unmarshal(call.Args, &args); err != nil {
				args = map[string]any{"_raw": string(call.Args)}
			}
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					ID:   call.ID,
					Name: call.Name,
					Args: args,
				},
			})
		}
		if len(parts) == 0 {
			return nil
		}
		return &genai.Content{Role: genai.RoleModel, Parts: parts}

	case models.RoleTool:
		// Gemini carries function responses in user-role contents.
		return &genai.Content{
			Role: genai.RoleUser,
			Parts: []*genai.Part{{
				FunctionResponse: &genai.FunctionResponse{
					ID:       msg.ToolCallID,
					Name:     msg.Name,
					Response: map[string]any{"content": msg.Content},
				},
			}},
		}

	default: // user
		if msg.Content == "" {
			return nil
		}
		return &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		}
	}
}

// toGenaiConfig builds the generation config. Tool declarations are only
// attached when the request carries them; a request without tools cannot
// produce further tool calls.
func toGenaiConfig(req *provider.GenerateRequest, system *genai.Content) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction: system,
	}

	if req.Config != nil {
		if req.Config.Temperature != nil {
			config.Temperature = req.Config.Temperature
		}
		if req.Config.TopP != nil {
			config.TopP = req.Config.TopP
		}
		if len(req.Config.StopSequences) > 0 {
			config.StopSequences = req.Config.StopSequences
		}
	}

	if len(req.Tools) > 0 {
		config.Tools = toGenaiTools(req.Tools)
		config.ToolConfig = &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAuto,
			},
		}
	}

	return config
}

// toGenaiTools converts tool declarations to Gemini function declarations.
func toGenaiTools(tools []provider.ToolDefinition) []*genai.Tool {
	declarations := make([]*genai.FunctionDeclaration, 0, len(tools))

	for _, tool := range tools {
		fd := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
		}
		if tool.Parameters != nil {
			fd.Parameters = toGenaiSchema(tool.Parameters)
		}
		declarations = append(declarations, fd)
	}

	return []*genai.Tool{
		{FunctionDeclarations: declarations},
	}
}

// toGenaiSchema converts ParameterSchema to Gemini Schema.
func toGenaiSchema(params *provider.ParameterSchema) *genai.Schema {
	schema := &genai.Schema{
		Type: genai.TypeObject,
	}

	if params.Properties != nil {
		schema.Properties = make(map[string]*genai.Schema, len(params.Properties))
		for name, prop := range params.Properties {
			property := &genai.Schema{
				Type:        toGenaiType(prop.Type),
				Description: prop.Description,
			}
			if len(prop.Enum) > 0 {
				property.Enum = prop.Enum
			}
			schema.Properties[name] = property
		}
	}

	if len(params.Required) > 0 {
		schema.Required = params.Required
	}

	return schema
}

// toGenaiType converts string type to Gemini Type.
func toGenaiType(typeStr string) genai.Type {
	switch typeStr {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// fromGenaiResponse converts a Gemini response to the internal format.
// nextID supplies call identifiers when the backend omits them, so every
// tool-call request can be correlated with its result.
func fromGenaiResponse(resp *genai.GenerateContentResponse, modelUsed string, nextID func() string) (*provider.GenerateResponse, error) {
	if len(resp.Candidates) == 0 {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "no candidates in response",
		}
	}

	candidate := resp.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeContentBlocked,
			Message: "content blocked by safety filters",
		}
	}

	if candidate.Content == nil {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "candidate has no content",
		}
	}

	var text string
	var toolCalls []models.ToolCall
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
		if part.FunctionCall != nil {
			args, err := json.Marshal(part.FunctionCall.Args)
			if err != nil {
				args = []byte("{}")
			}
			id := part.FunctionCall.ID
			if id == "" {
				id = nextID()
			}
			toolCalls = append(toolCalls, models.ToolCall{
				ID:   id,
				Name: part.FunctionCall.Name,
				Args: args,
			})
		}
	}

	content := provider.ResponseContent{Type: provider.ResponseTypeText, Text: text}
	if len(toolCalls) > 0 {
		// Prose accompanying the calls stays with them; the transcript
		// keeps what the model actually said.
		content = provider.ResponseContent{Type: provider.ResponseTypeToolCall, Text: text, ToolCalls: toolCalls}
	}

	return &provider.GenerateResponse{
		Content:  content,
		Metadata: buildMetadata(resp.UsageMetadata, modelUsed),
	}, nil
}

// buildMetadata builds response metadata from usage data.
func buildMetadata(usage *genai.GenerateContentResponseUsageMetadata, modelUsed string) provider.ResponseMetadata {
	metadata := provider.ResponseMetadata{
		ModelUsed: modelUsed,
	}

	if usage != nil {
		metadata.PromptTokens = int(usage.PromptTokenCount)
		metadata.CompletionTokens = int(usage.CandidatesTokenCount)
		metadata.TotalTokens = int(usage.TotalTokenCount)
	}

	return metadata
}

// mapGenaiError maps Gemini API errors to provider errors.
func mapGenaiError(err error) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(genai.APIError); ok {
		return mapAPIError(&apiErr, err)
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		return mapAPIError(apiErr, err)
	}

	return &provider.ProviderError{
		Code:       provider.ErrorCodeNetwork,
		Message:    "request failed",
		Underlying: err,
		Retryable:  true,
	}
}

func mapAPIError(apiErr *genai.APIError, err error) error {
	switch apiErr.Code {
	case 401, 403:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeAuth,
			Message:    "authentication failed",
			Underlying: err,
		}
	case 429:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeRateLimit,
			Message:    "rate limit exceeded",
			Underlying: err,
			Retryable:  true,
		}
	case 400:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    apiErr.Message,
			Underlying: err,
		}
	case 500, 502, 503, 504:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeUnavailable,
			Message:    "service unavailable",
			Underlying: err,
			Retryable:  true,
		}
	default:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeNetwork,
			Message:    apiErr.Message,
			Underlying: err,
		}
	}
}
