package user

import (
	"embed"
	"io/fs"

	"github.com/klwxsrx/dashboard-auth/pkg/sql"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationFiles embed.FS

var Migrations = sql.MigrationSource{
	sql.DriverPostgres: mustSub("postgres"),
	sql.DriverSQLite:   mustSub("sqlite"),
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(migrationFiles, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
