package auth_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/dashboard-auth/pkg/auth"
)

type principal struct {
	ID string
}

func TestCheckAuthenticated_Returns(t *testing.T) {
	errExpired := fmt.Errorf("%w: expired", auth.ErrUnauthenticated)

	ctx := context.Background()
	assert.Error(t, auth.CheckAuthenticated(ctx))

	authenticated := auth.WithAuthentication(ctx, auth.Authenticated(&principal{ID: "1"}))
	assert.NoError(t, auth.CheckAuthenticated(authenticated))

	rejected := auth.WithAuthentication(ctx, auth.Unauthenticated[principal](errExpired))
	assert.ErrorIs(t, auth.CheckAuthenticated(rejected), errExpired)

	anonymous := auth.WithAuthentication(ctx, auth.Unauthenticated[principal](nil))
	assert.True(t, errors.Is(auth.CheckAuthenticated(anonymous), auth.ErrUnauthenticated))
}

func TestGetAuthentication_Returns(t *testing.T) {
	ctx := auth.WithAuthentication(context.Background(), auth.Authenticated(&principal{ID: "1"}))

	result, ok := auth.GetAuthentication[principal](ctx)
	assert.True(t, ok)
	assert.Equal(t, "1", result.Principal.ID)

	_, ok = auth.GetAuthentication[string](ctx)
	assert.False(t, ok)
}
