package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in %d..%d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.MinPasswordLength < 6 {
		return fmt.Errorf("auth.min_password_length must be at least 6 (got %d)", c.Auth.MinPasswordLength)
	}

	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive (got %v)", c.Auth.SessionTTL)
	}
	if c.Auth.ResetTokenTTL <= 0 || c.Auth.VerifyTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive (reset %v, verify %v)",
			c.Auth.ResetTokenTTL, c.Auth.VerifyTokenTTL)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be positive (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.AuthPerMinute <= 0 {
			return fmt.Errorf("rate_limit.auth_per_minute must be positive (got %d)", c.RateLimit.AuthPerMinute)
		}
	}

	if c.Store.SimulatedLatency < 0 {
		return fmt.Errorf("store.simulated_latency must not be negative (got %v)", c.Store.SimulatedLatency)
	}

	return nil
}
