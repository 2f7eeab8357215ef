package auth

import (
	"context"
	"errors"
)

const authenticationContextKey contextKey = iota

type (
	contextKey int

	authenticationState interface {
		IsAuthenticated() bool
		UnauthenticatedReason() error
	}
)

func WithAuthentication[T any](ctx context.Context, auth Authentication[T]) context.Context {
	return context.WithValue(ctx, authenticationContextKey, auth)
}

func GetAuthentication[T any](ctx context.Context) (Authentication[T], bool) {
	auth, ok := ctx.Value(authenticationContextKey).(Authentication[T])
	return auth, ok
}

// CheckAuthenticated returns nil for an authenticated context
// and the reason of the rejection otherwise.
func CheckAuthenticated(ctx context.Context) error {
	state, ok := ctx.Value(authenticationContextKey).(authenticationState)
	if !ok {
		return errors.New("authentication not found")
	}

	return state.UnauthenticatedReason()
}
