package infra

import (
	"fmt"

	"github.com/klwxsrx/dashboard-auth/data/sql/user"
	"github.com/klwxsrx/dashboard-auth/internal/pkg/cmd"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	"github.com/klwxsrx/dashboard-auth/internal/user/infra/memory"
	"github.com/klwxsrx/dashboard-auth/internal/user/infra/sql"
	"github.com/klwxsrx/dashboard-auth/pkg/event"
	"github.com/klwxsrx/dashboard-auth/pkg/lazy"
	pkgsql "github.com/klwxsrx/dashboard-auth/pkg/sql"
)

type StorageContainer struct {
	UserRepo lazy.Loader[domain.UserRepository]
}

func NewStorageContainer(
	storage lazy.Loader[cmd.StorageAdapter],
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	eventDispatcher lazy.Loader[event.Dispatcher],
) StorageContainer {
	return StorageContainer{
		UserRepo: userRepoProvider(storage, db, dbMigrations, eventDispatcher),
	}
}

func userRepoProvider(
	storage lazy.Loader[cmd.StorageAdapter],
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	eventDispatcher lazy.Loader[event.Dispatcher],
) lazy.Loader[domain.UserRepository] {
	return lazy.New(func() (domain.UserRepository, error) {
		switch adapter := storage.MustLoad(); {
		case adapter == cmd.StorageAdapterMemory:
			return memory.NewUserRepository(eventDispatcher.MustLoad()), nil
		case adapter.IsSQL():
			dbMigrations.MustLoad().MustRegister(user.Migrations)
			return sql.NewUserRepository(db.MustLoad(), eventDispatcher.MustLoad()), nil
		default:
			return nil, fmt.Errorf("unsupported storage adapter %s", adapter)
		}
	})
}
