package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero
// values. Missing keys are left at their default values.
type Config struct {
	Model   ModelConfig   `json:"model"`
	Catalog CatalogConfig `json:"catalog"`
	Chat    ChatConfig    `json:"chat"`
}

type ModelConfig struct {
	// Name is the Gemini model identifier used for every completion.
	Name string `json:"name"` // Default: "gemini-2.0-flash"

	// Temperature applies to both the tool-selection call and the
	// grounded follow-up call.
	Temperature float32 `json:"temperature"` // Default: 0.3
}

type CatalogConfig struct {
	// Endpoint is the fixed product catalog URL. The endpoint receives no
	// query parameters; filtering happens locally.
	Endpoint string `json:"endpoint"`
}

type ChatConfig struct {
	// MaxProductsShown is how many products the assistant is asked to
	// present per answer.
	MaxProductsShown int `json:"max_products_shown"` // Default: 5
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Name:        "gemini-2.0-flash",
			Temperature: 0.3,
		},
		Catalog: CatalogConfig{
			Endpoint: "https://template-03-api.vercel.app/api/products",
		},
		Chat: ChatConfig{
			MaxProductsShown: 5,
		},
	}
}
