package adapter

import (
	"context"

	provider "github.com/Cyclone1070/shopmate/internal/provider/models"
)

// Tool represents a capability the model can invoke.
// Each tool must be stateless and safe for concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns a human-readable description
	Description() string

	// Definition returns the structured tool declaration for the provider
	Definition() provider.ToolDefinition

	// Execute runs the tool with the given arguments.
	// Args is a map of argument names to values, as decoded from the
	// model's raw payload.
	Execute(ctx context.Context, args map[string]any) (string, error)
}
