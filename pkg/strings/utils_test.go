package strings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/dashboard-auth/pkg/strings"
)

func TestParseTypedValue_Returns(t *testing.T) {
	d, err := strings.ParseTypedValue[time.Duration]("30m")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, d)

	b, err := strings.ParseTypedValue[bool]("true")
	require.NoError(t, err)
	assert.True(t, b)

	id := uuid.New()
	parsedID, err := strings.ParseTypedValue[uuid.UUID](id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsedID)

	ts, err := strings.ParseTypedValue[time.Time]("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), ts.Unix())

	_, err = strings.ParseTypedValue[int]("ten")
	assert.Error(t, err)
}

func TestToScreamingSnakeCase(t *testing.T) {
	assert.Equal(t, "HTTP_ADDRESS", strings.ToScreamingSnakeCase("httpAddress"))
	assert.Equal(t, "token_signature", strings.ToSnakeCase("tokenSignature"))
}
