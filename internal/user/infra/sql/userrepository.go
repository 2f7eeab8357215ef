package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	"github.com/klwxsrx/dashboard-auth/pkg/event"
	pkgsql "github.com/klwxsrx/dashboard-auth/pkg/sql"
)

const userTable = `"user"`

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at"}

type userRepository struct {
	db              pkgsql.Client
	eventDispatcher event.Dispatcher
}

func NewUserRepository(
	db pkgsql.Client,
	eventDispatcher event.Dispatcher,
) domain.UserRepository {
	return userRepository{db: db, eventDispatcher: eventDispatcher}
}

func (r userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r userRepository) Add(ctx context.Context, user *domain.User) error {
	createdAt := pkgsql.Time{Time: user.CreatedAt}
	query, args, err := pkgsql.StatementBuilder(r.db).
		Insert(userTable).
		Columns(append(userColumns, "updated_at")...).
		Values(user.ID.String(), user.Email, user.PasswordHash, user.FirstName, user.LastName, createdAt, createdAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if pkgsql.IsUniqueViolation(err) {
		return domain.ErrUserAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	err = r.eventDispatcher.Dispatch(ctx, user.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}

	user.Changes = nil
	return nil
}

func (r userRepository) FindOne(ctx context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	query, args, err := r.buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}

	return row.toDomain()
}

func (r userRepository) buildFindQuery(spec domain.FindUserSpecification) sq.SelectBuilder {
	qb := pkgsql.StatementBuilder(r.db).
		Select(userColumns...).
		From(userTable)
	if len(spec.IDs) > 0 {
		ids := make([]string, 0, len(spec.IDs))
		for _, id := range spec.IDs {
			ids = append(ids, id.String())
		}
		qb = qb.Where(sq.Eq{"id": ids})
	}
	if len(spec.Emails) > 0 {
		qb = qb.Where(sq.Eq{"email": spec.Emails})
	}

	return qb
}

type sqlxUser struct {
	ID           string      `db:"id"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	FirstName    string      `db:"first_name"`
	LastName     string      `db:"last_name"`
	CreatedAt    pkgsql.Time `db:"created_at"`
}

func (u sqlxUser) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}

	return &domain.User{
		ID:           domain.UserID{UUID: id},
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt.UTC(),
	}, nil
}
