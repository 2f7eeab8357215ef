//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SessionVerifier=SessionVerifier"
package auth

import (
	"context"
	"fmt"

	"github.com/klwxsrx/dashboard-auth/pkg/auth"
)

type (
	SessionVerifier interface {
		VerifySession(context.Context, SessionToken) (*Principal, error)
	}

	provider struct {
		sessions SessionVerifier
	}
)

func NewProvider(sessions SessionVerifier) auth.Provider[Principal] {
	return provider{sessions: sessions}
}

func (p provider) Authenticate(ctx context.Context, token auth.Token) (*Principal, error) {
	switch t := token.(type) {
	case SessionToken:
		return p.sessions.VerifySession(ctx, t)
	default:
		return nil, fmt.Errorf("unknown token with type %s", token.Type())
	}
}
