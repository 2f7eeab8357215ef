package auth

import (
	"github.com/klwxsrx/dashboard-auth/pkg/auth"
)

const TokenTypeSession auth.TokenType = "session"

// SessionToken is the token restored from the split session cookies.
type SessionToken struct {
	HeaderPayload string
	Signature     string
}

func (t SessionToken) Type() auth.TokenType {
	return TokenTypeSession
}
