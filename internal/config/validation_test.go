package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Model(t *testing.T) {
	t.Run("Empty Name Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Model.Name = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "model.name")
	})

	t.Run("Negative Temperature Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Model.Temperature = -0.1
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "temperature")
	})

	t.Run("Temperature Above Two Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Model.Temperature = 2.5
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "temperature")
	})

	t.Run("Zero Temperature Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Model.Temperature = 0
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidate_Catalog(t *testing.T) {
	t.Run("Empty Endpoint Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog.Endpoint = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "catalog.endpoint")
	})

	t.Run("Non HTTP Scheme Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog.Endpoint = "ftp://example.com/products"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "catalog.endpoint")
	})

	t.Run("Missing Host Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog.Endpoint = "https://"
		err := cfg.Validate()
		assert.Error(t, err)
	})
}

func TestValidate_Chat(t *testing.T) {
	t.Run("Zero MaxProductsShown Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Chat.MaxProductsShown = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_products_shown")
	})
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model.Name = ""
	cfg.Chat.MaxProductsShown = -1

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "model.name")
	assert.Contains(t, err.Error(), "max_products_shown")
}
