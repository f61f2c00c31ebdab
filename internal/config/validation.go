package config

import (
	"fmt"
	"net/url"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	if c.Model.Name == "" {
		errs = append(errs, "model.name must not be empty")
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		errs = append(errs, "model.temperature must be between 0 and 2")
	}

	if c.Catalog.Endpoint == "" {
		errs = append(errs, "catalog.endpoint must not be empty")
	} else {
		parsed, err := url.Parse(c.Catalog.Endpoint)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			errs = append(errs, "catalog.endpoint must be a valid http(s) URL")
		}
	}

	if c.Chat.MaxProductsShown < 1 {
		errs = append(errs, "chat.max_products_shown must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
