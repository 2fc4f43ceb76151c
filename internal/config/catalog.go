package config

import (
	"fmt"
	"net/url"
	"time"
)

// CatalogConfig holds configuration for the external Pokémon catalog.
type CatalogConfig struct {
	// BaseURL is the catalog API root, e.g. "https://pokeapi.co/api/v2".
	BaseURL string
	// Timeout bounds a single catalog lookup.
	Timeout time.Duration
}

// LoadCatalogConfigFromEnv loads catalog configuration from environment variables.
func LoadCatalogConfigFromEnv() CatalogConfig {
	return CatalogConfig{
		BaseURL: GetEnv("CATALOG_BASE_URL", "https://pokeapi.co/api/v2"),
		Timeout: GetEnvDuration("CATALOG_TIMEOUT", 10*time.Second),
	}
}

// Validate validates catalog configuration.
func (c CatalogConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL must be set")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid CATALOG_BASE_URL: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be greater than 0")
	}
	return nil
}
