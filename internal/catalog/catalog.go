// Package catalog fetches product records from the remote store API and
// applies an optional local substring filter. Failures never surface as Go
// errors to the caller; they come back as the error variant of Result so
// the model can explain them to the user.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client fetches products from a fixed catalog endpoint. The fetch is
// read-only and idempotent; no retries, no caching, and no timeout beyond
// whatever the injected http.Client carries.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given endpoint. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// Fetch retrieves the product list and, when query is non-empty, keeps only
// products whose name, description or category contains the query
// (case-insensitive). Source order is preserved. The remote call never
// receives the query; filtering happens locally.
func (c *Client) Fetch(ctx context.Context, query string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return Result{Error: fmt.Sprintf("failed to build catalog request: %v", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Error: fmt.Sprintf("failed to fetch products from API: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Error: fmt.Sprintf("failed to read catalog response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Error: fmt.Sprintf("failed to fetch products from API: status %d", resp.StatusCode)}
	}

	products, ok := decodeProducts(body)
	if !ok {
		result := Result{Error: "API response format invalid: missing 'data' key or not a list."}
		// Raw is carried into a JSON tool result, so a body that never
		// parsed as JSON cannot ride along.
		if json.Valid(body) {
			result.Raw = json.RawMessage(body)
		}
		return result
	}

	if query != "" {
		products = filter(products, query)
	}
	return Result{Data: products}
}

// decodeProducts validates that the body is an object whose "data" value is
// a list of product records.
func decodeProducts(body []byte) ([]Product, bool) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false
	}

	raw, exists := envelope["data"]
	if !exists {
		return nil, false
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		// JSON null unmarshals cleanly into a nil slice but is not a list.
		return nil, false
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	if products == nil {
		products = []Product{}
	}
	return products, true
}

// filter keeps products whose searchable text contains the lower-cased
// query. The filter is stable: surviving products keep their source order.
func filter(products []Product, query string) []Product {
	queryLower := strings.ToLower(query)
	filtered := make([]Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(product.searchText(), queryLower) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}
