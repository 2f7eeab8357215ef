package service

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTokenTTL  = time.Hour
	DefaultReauthTTL = 24 * time.Hour
	TokenIssuer      = "dashboard-app"

	minSecretLength = 32
)

// SessionConfig is read once on startup and never changed.
type SessionConfig struct {
	Secret       []byte
	TokenTTL     time.Duration
	ReauthTTL    time.Duration
	CookieSecure bool
}

// WithDefaults fills TokenTTL with DefaultTokenTTL and ReauthTTL with DefaultReauthTTL.
// ReauthTTL is the lifetime of the session cookies: an expired token may be renewed
// with the account password until it passes.
func (c SessionConfig) WithDefaults() SessionConfig {
	if c.TokenTTL <= 0 {
		c.TokenTTL = DefaultTokenTTL
	}
	if c.ReauthTTL <= 0 {
		c.ReauthTTL = max(DefaultReauthTTL, c.TokenTTL)
	}
	return c
}

func (c SessionConfig) Validate() error {
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("session secret must be at least %d bytes", minSecretLength)
	}
	if c.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	if c.ReauthTTL < c.TokenTTL {
		return errors.New("reauth ttl must not be shorter than token ttl")
	}
	return nil
}

func (c SessionConfig) String() string {
	return fmt.Sprintf(
		"SessionConfig{Secret: [REDACTED], TokenTTL: %s, ReauthTTL: %s, CookieSecure: %t}",
		c.TokenTTL,
		c.ReauthTTL,
		c.CookieSecure,
	)
}
