package config

import "fmt"

// AuthConfig holds bearer-token verification configuration.
// Tokens are issued by the external credential service; this backend
// only verifies them.
type AuthConfig struct {
	// JWTSecret is the HMAC secret shared with the credential service.
	JWTSecret string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret: GetEnv("AUTH_JWT_SECRET", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET must be set")
	}
	return nil
}
