package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	"github.com/klwxsrx/dashboard-auth/internal/user/infra/memory"
	"github.com/klwxsrx/dashboard-auth/pkg/event"
	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository(event.NewLoggingDispatcher(log.New(log.LevelDisabled)))

	user := domain.NewUser(repo.NextID(), "john@example.com", "hash", "John", "Doe", time.Now())
	require.NoError(t, repo.Add(ctx, user))
	assert.Empty(t, user.Changes)

	duplicate := domain.NewUser(repo.NextID(), "JOHN@example.com", "hash", "John", "Doe", time.Now())
	assert.ErrorIs(t, repo.Add(ctx, duplicate), domain.ErrUserAlreadyExists)

	found, err := repo.FindOne(ctx, domain.FindUserSpecification{Emails: []string{"john@example.com"}})
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{user.ID}})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", found.Email)

	_, err = repo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{duplicate.ID}})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ConcurrentRegistrationOfSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository(event.NewLoggingDispatcher(log.New(log.LevelDisabled)))

	const attempts = 16
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Add(ctx, domain.NewUser(repo.NextID(), "john@example.com", "hash", "John", "Doe", time.Now()))
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)
}
