package sql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	usersql "github.com/klwxsrx/dashboard-auth/data/sql/user"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	"github.com/klwxsrx/dashboard-auth/internal/user/infra/sql"
	pkgeventmock "github.com/klwxsrx/dashboard-auth/pkg/event/mock"
	"github.com/klwxsrx/dashboard-auth/pkg/log"
	pkgsql "github.com/klwxsrx/dashboard-auth/pkg/sql"
)

var testCreatedAt = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

func newTestUser(email string) *domain.User {
	return domain.NewUser(domain.UserID{UUID: uuid.New()}, email, "hash", "John", "Doe", testCreatedAt)
}

func newMockDB(t *testing.T) (pkgsql.Database, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return pkgsql.WrapDatabase(sqlx.NewDb(db, pkgsql.DriverPostgres), log.New(log.LevelDisabled)), mock
}

func TestUserRepository_Add_Postgres(t *testing.T) {
	insertQuery := regexp.QuoteMeta(`INSERT INTO "user" (id,email,password_hash,first_name,last_name,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`)

	tests := []struct {
		name       string
		execErr    error
		dispatched bool
		expect     func(t *testing.T, err error)
	}{
		{
			name:       "success",
			dispatched: true,
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "error_when_email_is_taken",
			execErr: &pq.Error{Code: "23505"},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
			},
		},
		{
			name:    "error_when_insert_fails",
			execErr: errors.New("connection reset"),
			expect: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrUserAlreadyExists)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			dispatcher := pkgeventmock.NewDispatcher(gomock.NewController(t))
			user := newTestUser("john@example.com")

			exec := mock.ExpectExec(insertQuery).
				WithArgs(user.ID.String(), "john@example.com", "hash", "John", "Doe", testCreatedAt, testCreatedAt)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
			}
			if tt.dispatched {
				dispatcher.EXPECT().Dispatch(gomock.Any(), user.Changes[0]).Return(nil)
			}

			err := sql.NewUserRepository(db, dispatcher).Add(context.Background(), user)
			tt.expect(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindOne_Postgres(t *testing.T) {
	selectQuery := regexp.QuoteMeta(`SELECT id, email, password_hash, first_name, last_name, created_at FROM "user" WHERE email IN ($1) LIMIT 1`)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.New()
		mock.ExpectQuery(selectQuery).
			WithArgs("john@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "created_at"}).
				AddRow(id.String(), "john@example.com", "hash", "John", "Doe", testCreatedAt))

		repo := sql.NewUserRepository(db, pkgeventmock.NewDispatcher(gomock.NewController(t)))
		user, err := repo.FindOne(context.Background(), domain.FindUserSpecification{Emails: []string{"john@example.com"}})
		require.NoError(t, err)
		assert.Equal(t, id, user.ID.UUID)
		assert.Equal(t, "John", user.FirstName)
		assert.True(t, testCreatedAt.Equal(user.CreatedAt))
	})

	t.Run("not_found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(selectQuery).
			WithArgs("john@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		repo := sql.NewUserRepository(db, pkgeventmock.NewDispatcher(gomock.NewController(t)))
		_, err := repo.FindOne(context.Background(), domain.FindUserSpecification{Emails: []string{"john@example.com"}})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	logger := log.New(log.LevelDisabled)

	impl, err := sqlx.Open(pkgsql.DriverSQLite, ":memory:")
	require.NoError(t, err)
	impl.SetMaxOpenConns(1)
	db := pkgsql.WrapDatabase(impl, logger)
	t.Cleanup(func() { db.Close(ctx) })

	require.NoError(t, pkgsql.NewMigrator(db, logger).Execute(ctx, usersql.Migrations))

	dispatcher := pkgeventmock.NewDispatcher(gomock.NewController(t))
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	repo := sql.NewUserRepository(db, dispatcher)

	user := newTestUser("john@example.com")
	require.NoError(t, repo.Add(ctx, user))
	assert.Empty(t, user.Changes)

	err = repo.Add(ctx, newTestUser("john@example.com"))
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	found, err := repo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{user.ID}})
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "john@example.com", found.Email)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.True(t, testCreatedAt.Equal(found.CreatedAt))

	found, err = repo.FindOne(ctx, domain.FindUserSpecification{Emails: []string{"john@example.com"}})
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindOne(ctx, domain.FindUserSpecification{Emails: []string{"jane@example.com"}})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
