package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/klwxsrx/dashboard-auth/pkg/log"
	"github.com/klwxsrx/dashboard-auth/pkg/sql"
)

type (
	SQLMigrations interface {
		MustRegister(sources ...sql.MigrationSource)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger

		mu sync.Mutex
	}
)

// NewSQLMigrations applies registered sources right away, one registration at a time.
func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

func (s *sqlMigrations) MustRegister(sources ...sql.MigrationSource) {
	if len(sources) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := sql.NewMigrator(s.db, s.logger).Execute(s.ctx, sources...)
	if err != nil {
		panic(fmt.Errorf("execute %s migrations: %w", s.db.DriverName(), err))
	}
}
