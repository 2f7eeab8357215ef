package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	"github.com/klwxsrx/dashboard-auth/pkg/event"
)

// userRepository keeps users in process memory, it is used for local runs and tests.
type userRepository struct {
	eventDispatcher event.Dispatcher

	mu      sync.RWMutex
	byID    map[domain.UserID]domain.User
	byEmail map[string]domain.UserID
}

func NewUserRepository(eventDispatcher event.Dispatcher) domain.UserRepository {
	return &userRepository{
		eventDispatcher: eventDispatcher,
		byID:            make(map[domain.UserID]domain.User),
		byEmail:         make(map[string]domain.UserID),
	}
}

func (r *userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r *userRepository) Add(ctx context.Context, user *domain.User) error {
	err := r.insert(user)
	if err != nil {
		return err
	}

	err = r.eventDispatcher.Dispatch(ctx, user.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}

	user.Changes = nil
	return nil
}

func (r *userRepository) FindOne(_ context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, user := range r.byID {
		if len(spec.IDs) > 0 && !slices.Contains(spec.IDs, id) {
			continue
		}
		if len(spec.Emails) > 0 && !slices.Contains(spec.Emails, user.Email) {
			continue
		}

		return &user, nil
	}

	return nil, domain.ErrUserNotFound
}

func (r *userRepository) insert(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrUserAlreadyExists
	}
	if _, ok := r.byID[user.ID]; ok {
		return fmt.Errorf("user %s already stored", user.ID)
	}

	stored := *user
	stored.Changes = nil
	r.byID[user.ID] = stored
	r.byEmail[user.Email] = user.ID
	return nil
}
