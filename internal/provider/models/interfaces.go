package models

import (
	"context"
)

// Provider defines the interface for LLM backends.
type Provider interface {
	// Generate sends a request to the model and returns the response.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// SetModel changes the active model at runtime.
	// Returns an error if the model name is invalid.
	SetModel(model string) error

	// GetModel returns the currently active model name.
	GetModel() string

	// ListModels returns a list of available model names.
	ListModels(ctx context.Context) ([]string, error)
}
