//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserRepository=UserRepository"
package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/dashboard-auth/pkg/event"
)

const (
	Name              = "user"
	AggregateNameUser = "user"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with specified email already exists")
)

type (
	User struct {
		ID           UserID
		Email        string
		PasswordHash string
		FirstName    string
		LastName     string
		CreatedAt    time.Time

		Changes []event.Event
	}

	UserRepository interface {
		NextID() UserID
		// Add fails with ErrUserAlreadyExists when the email is taken.
		Add(context.Context, *User) error
		FindOne(context.Context, FindUserSpecification) (*User, error)
	}

	FindUserSpecification struct {
		IDs    []UserID
		Emails []string
	}

	UserID struct{ uuid.UUID }
)

func NewUser(
	id UserID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	createdAt time.Time,
) *User {
	user := &User{
		ID:           id,
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    createdAt,
	}
	user.Changes = append(user.Changes, EventUserRegistered{
		EventID:    uuid.New(),
		UserID:     user.ID,
		OccurredAt: createdAt,
	})

	return user
}

// NormalizeEmail is applied both on storing and on lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
