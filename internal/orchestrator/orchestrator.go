package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Cyclone1070/shopmate/internal/config"
	"github.com/Cyclone1070/shopmate/internal/orchestrator/adapter"
	"github.com/Cyclone1070/shopmate/internal/orchestrator/models"
	provider "github.com/Cyclone1070/shopmate/internal/provider/models"
	"github.com/Cyclone1070/shopmate/internal/ui"
)

// systemPromptTemplate instructs the model on its role and how to use the
// product tool. The %d is filled from config (chat.max_products_shown).
const systemPromptTemplate = `You are a helpful shopping assistant. Your primary goal is to assist users in finding products.
You have access to a ` + "`get_products_api`" + ` tool to fetch product information.

When a user asks for products:
1. Call the ` + "`get_products_api`" + ` tool to get product data.
2. If the user's query contains keywords (like product names, types, or categories), pass that as the 'query' argument to the tool.
3. If no specific product is mentioned, you can call the tool without a 'query' to list general products.
4. Once you have the product data, present up to %d relevant products to the user.
5. For each product, display its 'productName', 'price' (convert cents to dollars, e.g., 10000 becomes $100.00), and optionally 'description' or 'category' if relevant to the user's query.
6. If no products are found for a specific query, politely inform the user and perhaps suggest some general popular products.
7. Be friendly, concise, and always offer further assistance.`

const goodbyeMessage = "Thank you for using the Shopping Assistant. Goodbye!"

// Orchestrator manages the conversation loop, tool dispatch, and the
// session transcript.
type Orchestrator struct {
	cfg      *config.Config
	provider provider.Provider
	ui       ui.UserInterface
	tools    map[string]adapter.Tool
	defs     []provider.ToolDefinition

	// transcript is append-only for the lifetime of one session
	transcript []models.Message
}

// New creates a new Orchestrator instance
func New(cfg *config.Config, p provider.Provider, userInterface ui.UserInterface, tools []adapter.Tool) *Orchestrator {
	toolMap := make(map[string]adapter.Tool)
	defs := make([]provider.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		toolMap[t.Name()] = t
		defs = append(defs, t.Definition())
	}

	return &Orchestrator{
		cfg:        cfg,
		provider:   p,
		ui:         userInterface,
		tools:      toolMap,
		defs:       defs,
		transcript: make([]models.Message, 0),
	}
}

// Run executes the conversation loop until the user ends the session or
// the context is cancelled.
func (o *Orchestrator) Run(ctx context.Context) error {
	systemPrompt := fmt.Sprintf(systemPromptTemplate, o.cfg.Chat.MaxProductsShown)
	o.transcript = []models.Message{models.SystemMessage(systemPrompt)}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		userInput, err := o.ui.ReadInput(ctx, "You: ")
		if err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}

		if isExitInput(userInput) {
			o.ui.WriteMessage(goodbyeMessage)
			return nil
		}

		o.transcript = append(o.transcript, models.UserMessage(userInput))

		if err := o.runTurn(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Turn-level recovery: the session survives provider
			// failures. The apology joins the transcript so the model
			// sees it on the next turn.
			apology := "I apologize, but I encountered an error. Could you please try again?"
			o.transcript = append(o.transcript, models.AssistantMessage(apology))
			o.ui.WriteStatus("error", err.Error())
			o.ui.WriteMessage(apology)
		}
	}
}

// isExitInput reports whether the input ends the session. Matching is
// case-insensitive and ignores surrounding whitespace; empty input also
// ends the session.
func isExitInput(input string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	return trimmed == "" || trimmed == "exit" || trimmed == "quit"
}

// runTurn sends the transcript to the model once and handles the response,
// dispatching tool calls when the model requests them.
func (o *Orchestrator) runTurn(ctx context.Context) error {
	o.ui.WriteStatus("thinking", "Agent thinking...")

	response, err := o.generate(ctx, true)
	if err != nil {
		return fmt.Errorf("provider error: %w", err)
	}

	switch response.Content.Type {
	case provider.ResponseTypeToolCall:
		// Record the assistant's tool-call request before any result
		o.transcript = append(o.transcript, models.Message{
			Role:      models.RoleAssistant,
			Content:   response.Content.Text,
			ToolCalls: response.Content.ToolCalls,
		})

		for _, call := range response.Content.ToolCalls {
			if err := o.dispatchCall(ctx, call); err != nil {
				return err
			}
		}

	case provider.ResponseTypeText:
		o.transcript = append(o.transcript, models.AssistantMessage(response.Content.Text))
		o.ui.WriteMessage(response.Content.Text)

	default:
		return fmt.Errorf("unknown response type %q", response.Content.Type)
	}

	o.ui.WriteStatus("done", fmt.Sprintf("%d tokens", response.Metadata.TotalTokens))
	return nil
}

// dispatchCall executes a single tool call and, on success, immediately
// requests a grounded follow-up response from the model. Argument and
// tool-resolution failures become assistant messages rather than errors,
// so a bad call never ends the session.
func (o *Orchestrator) dispatchCall(ctx context.Context, call models.ToolCall) error {
	var args map[string]any
	if len(call.Args) > 0 {
		if err := json.Unmarshal(call.Args, &args); err != nil {
			errText := fmt.Sprintf(
				"I encountered an error processing your request: agent tried to call %s with invalid JSON arguments: %s",
				call.Name, string(call.Args),
			)
			o.transcript = append(o.transcript, models.AssistantMessage(errText))
			o.ui.WriteMessage(errText)
			return nil
		}
	}

	tool, exists := o.tools[call.Name]
	if !exists {
		errText := fmt.Sprintf(
			"I was asked to use an unknown tool (%s). Please try again or rephrase your request.",
			call.Name,
		)
		o.transcript = append(o.transcript, models.AssistantMessage(errText))
		o.ui.WriteMessage(errText)
		return nil
	}

	o.ui.WriteStatus("fetching", "Fetching products...")
	result, err := tool.Execute(ctx, args)
	if err != nil {
		errText := fmt.Sprintf("I encountered an error while trying to find products: %v", err)
		o.transcript = append(o.transcript, models.AssistantMessage(errText))
		o.ui.WriteMessage(errText)
		return nil
	}

	o.transcript = append(o.transcript, models.ToolMessage(call.ID, call.Name, result))

	// Grounded follow-up: no tool declarations, so the model must answer
	// from the tool result it was just given.
	o.ui.WriteStatus("thinking", "Agent thinking...")
	followUp, err := o.generate(ctx, false)
	if err != nil {
		return fmt.Errorf("provider error: %w", err)
	}
	if followUp.Content.Type != provider.ResponseTypeText {
		return fmt.Errorf("follow-up returned %q instead of text", followUp.Content.Type)
	}

	o.transcript = append(o.transcript, models.AssistantMessage(followUp.Content.Text))
	o.ui.WriteMessage(followUp.Content.Text)
	return nil
}

// generate issues one completion over the current transcript. withTools
// controls whether tool declarations accompany the request.
func (o *Orchestrator) generate(ctx context.Context, withTools bool) (*provider.GenerateResponse, error) {
	temperature := o.cfg.Model.Temperature
	req := &provider.GenerateRequest{
		History: o.transcript,
		Config:  &provider.GenerateConfig{Temperature: &temperature},
	}
	if withTools {
		req.Tools = o.defs
	}
	return o.provider.Generate(ctx, req)
}
