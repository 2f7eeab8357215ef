package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

type (
	// Provider resolves a principal from a token.
	// Rejected tokens are reported with an error wrapping ErrUnauthenticated.
	Provider[T any] interface {
		Authenticate(context.Context, Token) (*T, error)
	}

	Token interface {
		Type() TokenType
	}

	TokenType string

	Authentication[T any] struct {
		Principal *T
		Reason    error
	}
)

func Authenticated[T any](principal *T) Authentication[T] {
	return Authentication[T]{Principal: principal}
}

func Unauthenticated[T any](reason error) Authentication[T] {
	if reason == nil {
		reason = ErrUnauthenticated
	}
	return Authentication[T]{Reason: reason}
}

func (a Authentication[T]) IsAuthenticated() bool {
	return a.Principal != nil
}

func (a Authentication[T]) UnauthenticatedReason() error {
	if a.IsAuthenticated() {
		return nil
	}
	if a.Reason == nil {
		return ErrUnauthenticated
	}
	return a.Reason
}
