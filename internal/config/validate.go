package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Registry.validate(); err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	return nil
}

func (r *RegistryConfig) validate() error {
	if r.SearchDefaultLimit <= 0 {
		return fmt.Errorf("search_default_limit must be > 0 (got %d)", r.SearchDefaultLimit)
	}
	if r.SearchMaxLimit < r.SearchDefaultLimit {
		return fmt.Errorf("search_max_limit must be >= search_default_limit (got %d < %d)", r.SearchMaxLimit, r.SearchDefaultLimit)
	}
	return nil
}
