package service

import (
	"errors"
	"fmt"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/validation"
	"github.com/klwxsrx/dashboard-auth/pkg/auth"
)

var (
	ErrInvalidInput        = validation.ErrInvalidInput
	ErrCredentialsMismatch = errors.New("incorrect email or password")
	ErrUserAlreadyExists   = errors.New("user with specified email already exists")
	ErrUserNotFound        = errors.New("user not found")

	ErrSessionInvalid           = fmt.Errorf("%w: session is invalid", auth.ErrUnauthenticated)
	ErrReauthenticationRequired = fmt.Errorf("%w: re-authentication required", auth.ErrUnauthenticated)
)
