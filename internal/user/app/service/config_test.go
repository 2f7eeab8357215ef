package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
)

func TestSessionConfig_Validate(t *testing.T) {
	secret := []byte(strings.Repeat("s", 32))

	cfg := service.SessionConfig{Secret: secret}.WithDefaults()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, service.DefaultReauthTTL, cfg.ReauthTTL)

	long := service.SessionConfig{Secret: secret, TokenTTL: 48 * time.Hour}.WithDefaults()
	assert.NoError(t, long.Validate())
	assert.Equal(t, 48*time.Hour, long.ReauthTTL)

	assert.Error(t, service.SessionConfig{Secret: []byte("short")}.WithDefaults().Validate())
	assert.Error(t, service.SessionConfig{
		Secret:    secret,
		TokenTTL:  time.Hour,
		ReauthTTL: 30 * time.Minute,
	}.Validate())
}

func TestSessionConfig_String_RedactsSecret(t *testing.T) {
	cfg := service.SessionConfig{Secret: []byte("super-secret-value-that-is-long-enough")}.WithDefaults()
	assert.NotContains(t, cfg.String(), "super-secret")
}
