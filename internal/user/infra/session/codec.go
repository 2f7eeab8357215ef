package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/session"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	pkgtime "github.com/klwxsrx/dashboard-auth/pkg/time"
)

type (
	CodecOption func(*codec)

	codec struct {
		secret []byte
		ttl    time.Duration
		issuer string
		clock  pkgtime.Clock
		parser *jwt.Parser
	}

	tokenClaims struct {
		User tokenUser `json:"user"`
		jwt.RegisteredClaims
	}

	tokenUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
)

// NewCodec returns an HS256 token codec. Claims validation is done by the codec itself
// so that the signature is always checked before the expiration.
func NewCodec(secret []byte, ttl time.Duration, issuer string, opts ...CodecOption) session.TokenCodec {
	c := &codec{
		secret: secret,
		ttl:    ttl,
		issuer: issuer,
		clock:  pkgtime.NewClock(),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
			jwt.WithStrictDecoding(),
		),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func WithClock(clock pkgtime.Clock) CodecOption {
	return func(c *codec) {
		c.clock = clock
	}
}

func (c *codec) Issue(claims session.Claims) (session.TokenData, error) {
	issuedAt := c.clock.Now().Truncate(jwt.TimePrecision)
	expiresAt := issuedAt.Add(c.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		User: tokenUser{
			ID:    claims.UserID.String(),
			Email: claims.Email,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return session.TokenData{}, fmt.Errorf("sign token: %w", err)
	}

	return session.TokenData{
		Token:     session.Token(signed),
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (c *codec) Verify(token session.Token) (session.Claims, error) {
	var parsed tokenClaims
	_, err := c.parser.ParseWithClaims(string(token), &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return session.Claims{}, fmt.Errorf("%w: %w", session.ErrSignatureInvalid, err)
	}

	claims, err := c.toSessionClaims(parsed)
	if err != nil {
		return session.Claims{}, fmt.Errorf("%w: %w", session.ErrSignatureInvalid, err)
	}

	if c.clock.Now().After(claims.ExpiresAt) {
		return claims, session.ErrTokenExpired
	}

	return claims, nil
}

func (c *codec) toSessionClaims(parsed tokenClaims) (session.Claims, error) {
	if parsed.Issuer != c.issuer {
		return session.Claims{}, fmt.Errorf("unexpected issuer %q", parsed.Issuer)
	}
	if parsed.ExpiresAt == nil || parsed.IssuedAt == nil {
		return session.Claims{}, errors.New("token lifetime is not set")
	}
	if parsed.Subject != parsed.User.ID {
		return session.Claims{}, errors.New("subject does not match user")
	}

	userID, err := uuid.Parse(parsed.User.ID)
	if err != nil {
		return session.Claims{}, fmt.Errorf("parse user id: %w", err)
	}

	return session.Claims{
		UserID:    domain.UserID{UUID: userID},
		Email:     parsed.User.Email,
		IssuedAt:  parsed.IssuedAt.Time,
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}
