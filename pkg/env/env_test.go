package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/dashboard-auth/pkg/env"
)

func TestParse_Returns(t *testing.T) {
	t.Setenv("TEST_ENV_DURATION", "90s")
	t.Setenv("TEST_ENV_BROKEN", "ninety")

	d, err := env.Parse[time.Duration]("TEST_ENV_DURATION")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = env.Parse[time.Duration]("TEST_ENV_BROKEN")
	assert.Error(t, err)

	_, err = env.Parse[string]("TEST_ENV_MISSING")
	assert.Error(t, err)
}

func TestParseOptional_Missing_ReturnsNil(t *testing.T) {
	v, err := env.ParseOptional[int]("TEST_ENV_MISSING")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParseDefault_Returns(t *testing.T) {
	t.Setenv("TEST_ENV_BOOL", "true")

	b, err := env.ParseDefault("TEST_ENV_BOOL", false)
	require.NoError(t, err)
	assert.True(t, b)

	addr, err := env.ParseDefault("TEST_ENV_MISSING", ":8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)
}

func TestMust_Panics(t *testing.T) {
	assert.Panics(t, func() {
		env.Must(env.Parse[string]("TEST_ENV_MISSING"))
	})
}
