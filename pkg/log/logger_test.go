package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

func TestLogger_WithContext_FieldsWritten(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(log.LevelInfo, &buf)

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "abc"})
	logger.WithError(errors.New("boom")).WithField("route", "POST_login").Info(ctx, "request handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request handled", entry["msg"])
	assert.Equal(t, "abc", entry["requestID"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "POST_login", entry["route"])
}

func TestLogger_BelowLevel_Skipped(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(log.LevelWarn, &buf)

	logger.Info(context.Background(), "skipped")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), "written")
	assert.Contains(t, buf.String(), "written")
}

func TestParseLevel_Unknown_FallsBackToInfo(t *testing.T) {
	assert.Equal(t, log.LevelInfo, log.ParseLevel("verbose"))
	assert.Equal(t, log.LevelDisabled, log.ParseLevel("disabled"))
	assert.Equal(t, log.LevelError, log.ParseLevel("error"))
}
