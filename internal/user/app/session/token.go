//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenCodec=TokenCodec"
package session

import (
	"errors"
	"time"

	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
)

var (
	ErrSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired     = errors.New("token is expired")
)

type (
	// TokenCodec signs and verifies session tokens with a secret and TTL fixed at construction.
	// Verify checks the signature first: an expired token that was signed by us
	// returns its claims together with ErrTokenExpired.
	TokenCodec interface {
		Issue(Claims) (TokenData, error)
		Verify(Token) (Claims, error)
	}

	Claims struct {
		UserID    domain.UserID
		Email     string
		IssuedAt  time.Time
		ExpiresAt time.Time
	}

	TokenData struct {
		Token     Token
		IssuedAt  time.Time
		ExpiresAt time.Time
	}

	Token string
)
