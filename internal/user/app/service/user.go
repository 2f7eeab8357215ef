package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/encoding"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	pkgtime "github.com/klwxsrx/dashboard-auth/pkg/time"
)

type (
	User interface {
		Register(context.Context, RegistrationData) (domain.UserID, error)
		GetByID(context.Context, domain.UserID) (*UserData, error)
	}

	RegistrationData struct {
		Email     string
		Password  string
		FirstName string
		LastName  string
	}

	UserData struct {
		ID        domain.UserID
		Email     string
		FirstName string
		LastName  string
		CreatedAt time.Time
	}

	userService struct {
		userRepo        domain.UserRepository
		passwordEncoder encoding.PasswordEncoder
		clock           pkgtime.Clock
	}
)

func NewUser(
	userRepo domain.UserRepository,
	passwordEncoder encoding.PasswordEncoder,
) User {
	return &userService{
		userRepo:        userRepo,
		passwordEncoder: passwordEncoder,
		clock:           pkgtime.NewClock(),
	}
}

func (s *userService) Register(ctx context.Context, data RegistrationData) (domain.UserID, error) {
	passwordHash, err := s.passwordEncoder.HashPassword(data.Password)
	if err != nil {
		return domain.UserID{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.NewUser(
		s.userRepo.NextID(),
		data.Email,
		passwordHash,
		data.FirstName,
		data.LastName,
		s.clock.Now().UTC(),
	)

	err = s.userRepo.Add(ctx, user)
	if errors.Is(err, domain.ErrUserAlreadyExists) {
		return domain.UserID{}, ErrUserAlreadyExists
	}
	if err != nil {
		return domain.UserID{}, fmt.Errorf("add user: %w", err)
	}

	return user.ID, nil
}

func (s *userService) GetByID(ctx context.Context, userID domain.UserID) (*UserData, error) {
	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{userID}})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return toUserData(user), nil
}

func toUserData(user *domain.User) *UserData {
	return &UserData{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}
