package adapter

import (
	"context"

	"github.com/Cyclone1070/shopmate/internal/catalog"
	provider "github.com/Cyclone1070/shopmate/internal/provider/models"
)

// GetProductsToolName is the tool identifier handed to the model.
const GetProductsToolName = "get_products_api"

// GetProductsRequest carries the decoded arguments for get_products_api.
// An absent query means no filter.
type GetProductsRequest struct {
	Query string `mapstructure:"query"`
}

// NewGetProductsAdapter adapts the catalog client to the Tool interface.
// The catalog's error variant is part of the tool result, not a Go error:
// fetch failures are serialized into the transcript so the model can
// explain them.
func NewGetProductsAdapter(client *catalog.Client) Tool {
	return NewBaseAdapter(
		GetProductsToolName,
		"Fetch a list of products from an online store, optionally filtered by a search query.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"query": {
					Type:        "string",
					Description: "A keyword or phrase to search for within product names, descriptions, or categories (e.g., 'shoes', 'watch', 'electronics').",
				},
			},
		},
		func(ctx context.Context, req GetProductsRequest) (catalog.Result, error) {
			return client.Fetch(ctx, req.Query), nil
		},
	)
}
