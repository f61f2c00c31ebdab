package gemini

import (
	"encoding/json"
	"testing"

	"github.com/Cyclone1070/shopmate/internal/orchestrator/models"
	provider "github.com/Cyclone1070/shopmate/internal/provider/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGenaiContents_RoleMapping(t *testing.T) {
	t.Parallel()

	history := []models.Message{
		models.SystemMessage("be helpful"),
		models.UserMessage("wireless headphones"),
		{
			Role: models.RoleAssistant,
			ToolCalls: []models.ToolCall{
				{ID: "call-1", Name: "get_products_api", Args: json.RawMessage(`{"query":"headphones"}`)},
			},
		},
		models.ToolMessage("call-1", "get_products_api", `{"data": []}`),
		models.AssistantMessage("No matches, sorry."),
	}

	contents, system := toGenaiContents(history)

	require.NotNil(t, system)
	assert.Equal(t, "be helpful", system.Parts[0].Text)

	require.Len(t, contents, 4)

	assert.Equal(t, genai.RoleUser, contents[0].Role)
	assert.Equal(t, "wireless headphones", contents[0].Parts[0].Text)

	assert.Equal(t, genai.RoleModel, contents[1].Role)
	call := contents[1].Parts[0].FunctionCall
	require.NotNil(t, call)
	assert.Equal(t, "call-1", call.ID)
	assert.Equal(t, "get_products_api", call.Name)
	assert.Equal(t, map[string]any{"query": "headphones"}, call.Args)

	assert.Equal(t, genai.RoleUser, contents[2].Role)
	response := contents[2].Parts[0].FunctionResponse
	require.NotNil(t, response)
	assert.Equal(t, "call-1", response.ID)
	assert.Equal(t, "get_products_api", response.Name)
	assert.Equal(t, `{"data": []}`, response.Response["content"])

	assert.Equal(t, genai.RoleModel, contents[3].Role)
	assert.Equal(t, "No matches, sorry.", contents[3].Parts[0].Text)
}

func TestToGenaiContents_SkipsEmptyMessages(t *testing.T) {
	t.Parallel()

	contents, system := toGenaiContents([]models.Message{
		models.UserMessage(""),
		models.AssistantMessage(""),
	})

	assert.Nil(t, system)
	assert.Empty(t, contents)
}

func TestToGenaiContents_MalformedArgsStillForwarded(t *testing.T) {
	t.Parallel()

	contents, _ := toGenaiContents([]models.Message{
		{
			Role: models.RoleAssistant,
			ToolCalls: []models.ToolCall{
				{ID: "call-1", Name: "get_products_api", Args: json.RawMessage(`{not json`)},
			},
		},
	})

	require.Len(t, contents, 1)
	call := contents[0].Parts[0].FunctionCall
	require.NotNil(t, call)
	assert.Equal(t, `{not json`, call.Args["_raw"])
}

func TestToGenaiSchema(t *testing.T) {
	t.Parallel()

	schema := toGenaiSchema(&provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"query": {Type: "string", Description: "search query"},
			"limit": {Type: "integer"},
			"sort":  {Type: "string", Enum: []string{"asc", "desc"}},
		},
		Required: []string{"query"},
	})

	assert.Equal(t, genai.TypeObject, schema.Type)
	require.Len(t, schema.Properties, 3)
	assert.Equal(t, genai.TypeString, schema.Properties["query"].Type)
	assert.Equal(t, "search query", schema.Properties["query"].Description)
	assert.Equal(t, genai.TypeInteger, schema.Properties["limit"].Type)
	assert.Equal(t, []string{"asc", "desc"}, schema.Properties["sort"].Enum)
	assert.Equal(t, []string{"query"}, schema.Required)
}

func TestFromGenaiResponse_NoCandidates(t *testing.T) {
	t.Parallel()

	_, err := fromGenaiResponse(&genai.GenerateContentResponse{}, "m", func() string { return "x" })

	var provErr *provider.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, provider.ErrorCodeInvalidRequest, provErr.Code)
}

func TestFromGenaiResponse_SafetyBlock(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
	}
	_, err := fromGenaiResponse(resp, "m", func() string { return "x" })

	var provErr *provider.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, provider.ErrorCodeContentBlocked, provErr.Code)
}

func TestFromGenaiResponse_UsageMetadata(t *testing.T) {
	t.Parallel()

	resp := textResponse("hi")
	resp.UsageMetadata = &genai.GenerateContentResponseUsageMetadata{
		PromptTokenCount:     100,
		CandidatesTokenCount: 20,
		TotalTokenCount:      120,
	}

	out, err := fromGenaiResponse(resp, "gemini-2.0-flash", func() string { return "x" })
	require.NoError(t, err)
	assert.Equal(t, 100, out.Metadata.PromptTokens)
	assert.Equal(t, 20, out.Metadata.CompletionTokens)
	assert.Equal(t, 120, out.Metadata.TotalTokens)
	assert.Equal(t, "gemini-2.0-flash", out.Metadata.ModelUsed)
}
