package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/dashboard-auth/internal/pkg/auth"
	"github.com/klwxsrx/dashboard-auth/internal/user/app/session"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
)

type (
	Authentication interface {
		auth.SessionVerifier
		Login(ctx context.Context, email, password string) (*SessionData, error)
		// Refresh re-issues an expired session only when the account password is provided.
		// An empty password means the password was not provided.
		Refresh(ctx context.Context, token auth.SessionToken, password string) (*RefreshResult, error)
	}

	SessionUser struct {
		ID    domain.UserID
		Email string
	}

	SessionData struct {
		User      SessionUser
		Token     session.SplitToken
		IssuedAt  time.Time
		ExpiresAt time.Time
	}

	RefreshResult struct {
		User SessionUser
		// Renewed is nil when the session is still valid.
		Renewed *SessionData
	}

	authenticationService struct {
		credentials CredentialsVerifier
		tokens      session.TokenCodec
	}
)

func NewAuthentication(
	credentials CredentialsVerifier,
	tokens session.TokenCodec,
) Authentication {
	return &authenticationService{
		credentials: credentials,
		tokens:      tokens,
	}
}

func (s authenticationService) Login(ctx context.Context, email, password string) (*SessionData, error) {
	user, err := s.credentials.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.issue(SessionUser{ID: user.ID, Email: user.Email})
}

func (s authenticationService) Refresh(ctx context.Context, token auth.SessionToken, password string) (*RefreshResult, error) {
	claims, err := s.tokens.Verify(session.Join(token.HeaderPayload, token.Signature))
	if err == nil {
		return &RefreshResult{User: sessionUser(claims)}, nil
	}
	if !errors.Is(err, session.ErrTokenExpired) {
		return nil, sessionError(err)
	}
	if password == "" {
		return nil, ErrReauthenticationRequired
	}

	user, err := s.credentials.VerifyUser(ctx, claims.UserID, password)
	if err != nil {
		return nil, err
	}

	renewed, err := s.issue(SessionUser{ID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}

	return &RefreshResult{
		User:    renewed.User,
		Renewed: renewed,
	}, nil
}

func (s authenticationService) VerifySession(_ context.Context, token auth.SessionToken) (*auth.Principal, error) {
	claims, err := s.tokens.Verify(session.Join(token.HeaderPayload, token.Signature))
	if errors.Is(err, session.ErrTokenExpired) {
		return nil, ErrReauthenticationRequired
	}
	if err != nil {
		return nil, sessionError(err)
	}

	return &auth.Principal{
		UserID: claims.UserID.UUID,
		Email:  claims.Email,
	}, nil
}

func (s authenticationService) issue(user SessionUser) (*SessionData, error) {
	tokenData, err := s.tokens.Issue(session.Claims{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	splitToken, err := session.Split(tokenData.Token)
	if err != nil {
		return nil, fmt.Errorf("split issued token: %w", err)
	}

	return &SessionData{
		User:      user,
		Token:     splitToken,
		IssuedAt:  tokenData.IssuedAt,
		ExpiresAt: tokenData.ExpiresAt,
	}, nil
}

func sessionUser(claims session.Claims) SessionUser {
	return SessionUser{ID: claims.UserID, Email: claims.Email}
}

func sessionError(err error) error {
	if errors.Is(err, session.ErrSignatureInvalid) || errors.Is(err, session.ErrMalformedToken) {
		return fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}
	return fmt.Errorf("verify token: %w", err)
}
