package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/dashboard-auth/pkg/cmd"
	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

func TestRun_StopsOtherJobsWhenOneCompletes(t *testing.T) {
	stopped := false
	err := cmd.Run(context.Background(), log.New(log.LevelDisabled),
		func(context.Context) error { return nil },
		func(ctx context.Context) error {
			<-ctx.Done()
			stopped = true
			return ctx.Err()
		},
	)

	assert.NoError(t, err)
	assert.True(t, stopped)
}

func TestRun_ReturnsJobError(t *testing.T) {
	errListen := errors.New("listen failed")
	err := cmd.Run(context.Background(), log.New(log.LevelDisabled),
		func(context.Context) error { return errListen },
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)

	assert.ErrorIs(t, err, errListen)
}

func TestHandleAppPanic(t *testing.T) {
	assert.False(t, cmd.HandleAppPanic(context.Background(), log.New(log.LevelDisabled), nil))
	assert.True(t, cmd.HandleAppPanic(context.Background(), log.New(log.LevelDisabled), "boom"))
}
