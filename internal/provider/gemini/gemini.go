// Package gemini implements the LLM provider on top of the official Gemini
// SDK. The transcript, tool declarations, and tool-selection mode all
// translate to their native SDK equivalents in convert.go.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	provider "github.com/Cyclone1070/shopmate/internal/provider/models"
)

// GeminiProvider implements the Provider interface for Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	mu        sync.RWMutex
	modelName string
	callSeq   atomic.Int64
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// Generate sends the transcript (plus any tool declarations) to the Gemini
// API and returns the response.
func (p *GeminiProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	p.mu.RLock()
	model := p.modelName
	p.mu.RUnlock()

	contents, system := toGenaiContents(req.History)
	config := toGenaiConfig(req, system)

	resp, err := p.client.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, mapGenaiError(err)
	}

	return fromGenaiResponse(resp, model, p.nextCallID)
}

// SetModel changes the active model at runtime.
func (p *GeminiProvider) SetModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return provider.ErrInvalidModel
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.modelName = model
	return nil
}

// GetModel returns the currently active model name.
func (p *GeminiProvider) GetModel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}

// ListModels returns available chat model names.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]string, error) {
	names, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, mapGenaiError(err)
	}
	return names, nil
}

// nextCallID synthesizes a session-unique tool call identifier for
// responses where the backend omits one.
func (p *GeminiProvider) nextCallID() string {
	return fmt.Sprintf("call-%d", p.callSeq.Add(1))
}
