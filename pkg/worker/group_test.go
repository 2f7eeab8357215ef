package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/dashboard-auth/pkg/worker"
)

func TestGroup_Wait_ReturnsFirstErrorAndCancels(t *testing.T) {
	ctx, group := worker.NewGroup(context.Background())
	errFailed := errors.New("failed")

	group.Do(func() error {
		return errFailed
	})
	group.Do(func() error {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(5 * time.Second):
			return errors.New("context was not cancelled")
		}
	})

	assert.ErrorIs(t, group.Wait(), errFailed)
}

func TestGroup_Wait_NoErrors(t *testing.T) {
	_, group := worker.NewGroup(context.Background())
	for i := 0; i < 3; i++ {
		group.Do(func() error { return nil })
	}

	assert.NoError(t, group.Wait())
}
