package sql

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

// MigrationSource holds goose migrations per driver name.
type MigrationSource map[string]fs.FS

var gooseDialects = map[string]goose.Dialect{
	DriverPostgres: goose.DialectPostgres,
	DriverSQLite:   goose.DialectSQLite3,
}

type Migrator struct {
	db     Database
	logger log.Logger
}

func NewMigrator(db Database, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	driver := m.db.DriverName()
	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("migrations are not supported for driver %s", driver)
	}

	for _, source := range sources {
		fsys, ok := source[driver]
		if !ok {
			return fmt.Errorf("migration source has no migrations for driver %s", driver)
		}

		provider, err := goose.NewProvider(dialect, m.db.SQLDB(), fsys)
		if err != nil {
			return fmt.Errorf("init migration provider: %w", err)
		}

		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}

		for _, result := range results {
			m.logger.
				WithField("migrationVersion", result.Source.Version).
				Info(ctx, "migration executed successfully")
		}
	}

	return nil
}
