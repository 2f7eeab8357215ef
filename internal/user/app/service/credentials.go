package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/encoding"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
)

type (
	// CredentialsVerifier does not tell an unknown email from a wrong password.
	CredentialsVerifier interface {
		Verify(ctx context.Context, email, password string) (*UserData, error)
		// VerifyUser checks the password of an already identified account.
		VerifyUser(ctx context.Context, userID domain.UserID, password string) (*UserData, error)
	}

	credentialsVerifier struct {
		userRepo        domain.UserRepository
		passwordEncoder encoding.PasswordEncoder
		dummyHash       func() (string, error)
	}
)

// dummyPassword is hashed once to pay the same match cost for unknown accounts.
const dummyPassword = "dashboard-auth-dummy-password"

func NewCredentialsVerifier(
	userRepo domain.UserRepository,
	passwordEncoder encoding.PasswordEncoder,
) CredentialsVerifier {
	return credentialsVerifier{
		userRepo:        userRepo,
		passwordEncoder: passwordEncoder,
		dummyHash: sync.OnceValues(func() (string, error) {
			return passwordEncoder.HashPassword(dummyPassword)
		}),
	}
}

func (v credentialsVerifier) Verify(ctx context.Context, email, password string) (*UserData, error) {
	user, err := v.userRepo.FindOne(ctx, domain.FindUserSpecification{
		Emails: []string{domain.NormalizeEmail(email)},
	})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, v.mismatchUnknown(password)
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	err = v.checkPassword(user, password)
	if err != nil {
		return nil, err
	}

	return toUserData(user), nil
}

func (v credentialsVerifier) VerifyUser(ctx context.Context, userID domain.UserID, password string) (*UserData, error) {
	user, err := v.userRepo.FindOne(ctx, domain.FindUserSpecification{
		IDs: []domain.UserID{userID},
	})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, v.mismatchUnknown(password)
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	err = v.checkPassword(user, password)
	if err != nil {
		return nil, err
	}

	return toUserData(user), nil
}

func (v credentialsVerifier) checkPassword(user *domain.User, password string) error {
	ok, err := v.passwordEncoder.MatchPassword(user.PasswordHash, password)
	if err != nil {
		return fmt.Errorf("match password: %w", err)
	}
	if !ok {
		return ErrCredentialsMismatch
	}

	return nil
}

// mismatchUnknown runs a full password match against a dummy hash so an unknown
// account takes as long to reject as a wrong password.
func (v credentialsVerifier) mismatchUnknown(password string) error {
	hash, err := v.dummyHash()
	if err != nil {
		return fmt.Errorf("hash dummy password: %w", err)
	}

	_, err = v.passwordEncoder.MatchPassword(hash, password)
	if err != nil {
		return fmt.Errorf("match password: %w", err)
	}

	return ErrCredentialsMismatch
}
