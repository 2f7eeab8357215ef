package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/klwxsrx/dashboard-auth/pkg/cmd"
	"github.com/klwxsrx/dashboard-auth/pkg/env"
	"github.com/klwxsrx/dashboard-auth/pkg/http"
	"github.com/klwxsrx/dashboard-auth/pkg/lazy"
	"github.com/klwxsrx/dashboard-auth/pkg/log"
	"github.com/klwxsrx/dashboard-auth/pkg/pulsar"
	"github.com/klwxsrx/dashboard-auth/pkg/sql"
)

const defaultSQLiteFile = "dashboard-auth.db"

type InfrastructureContainer struct {
	HTTPServer       lazy.Loader[http.Server]
	EventDispatchers lazy.Loader[EventDispatchers]
	Storage          lazy.Loader[StorageAdapter]
	DBMigrations     lazy.Loader[SQLMigrations]
	DB               lazy.Loader[sql.Database]
	Logger           lazy.Loader[log.Logger]

	pulsarConn lazy.Loader[pulsar.Connection]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	logger := loggerProvider()
	storage := storageAdapterProvider()

	db := sqlDatabaseProvider(ctx, storage, logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)
	pulsarConn := pulsarConnectionProvider(logger)

	return &InfrastructureContainer{
		HTTPServer:       httpServerProvider(logger),
		EventDispatchers: eventDispatchersProvider(pulsarConn, logger),
		Storage:          storage,
		DBMigrations:     dbMigrations,
		DB:               db,
		Logger:           logger,
		pulsarConn:       pulsarConn,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	if i.pulsarConn != nil {
		i.pulsarConn.IfLoaded(func(conn pulsar.Connection) { conn.Close() })
	}
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel := env.Must(env.ParseDefault("LOG_LEVEL", "info"))
		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func storageAdapterProvider() lazy.Loader[StorageAdapter] {
	return lazy.New(func() (StorageAdapter, error) {
		return ParseStorageAdapter(env.Must(env.ParseDefault("DB_ADAPTER", string(StorageAdapterPostgres))))
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	storage lazy.Loader[StorageAdapter],
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			MaxOpenConnections: env.Must(env.ParseDefault("SQL_MAX_OPEN_CONNECTIONS", 10)),
			MaxIdleConnections: env.Must(env.ParseDefault("SQL_MAX_IDLE_CONNECTIONS", 10)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		switch adapter := storage.MustLoad(); adapter {
		case StorageAdapterPostgres:
			sqlConfig.Driver = sql.DriverPostgres
			sqlConfig.DSN = sql.PostgresDSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
				SSLMode:  env.Must(env.ParseDefault("SQL_SSL_MODE", "disable")),
			}.String()
		case StorageAdapterSQLite:
			sqlConfig.Driver = sql.DriverSQLite
			sqlConfig.DSN = env.Must(env.ParseDefault("SQLITE_FILE", defaultSQLiteFile))
			sqlConfig.MaxOpenConnections = 1
		default:
			return nil, fmt.Errorf("storage adapter %s has no sql database", adapter)
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

// pulsarConnectionProvider returns nil when PULSAR_ADDRESS is not set.
func pulsarConnectionProvider(logger lazy.Loader[log.Logger]) lazy.Loader[pulsar.Connection] {
	address := env.Must(env.ParseOptional[string]("PULSAR_ADDRESS"))
	if address == nil {
		return nil
	}

	return lazy.New(func() (pulsar.Connection, error) {
		config := pulsar.Config{
			Address: *address,
		}
		connTimeout := env.Must(env.ParseOptional[time.Duration]("PULSAR_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		conn, err := pulsar.NewConnection(config, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open pulsar connection: %w", err))
		}

		return conn, nil
	})
}

func eventDispatchersProvider(
	pulsarConn lazy.Loader[pulsar.Connection],
	logger lazy.Loader[log.Logger],
) lazy.Loader[EventDispatchers] {
	return lazy.New(func() (EventDispatchers, error) {
		return NewEventDispatchers(pulsarConn, logger.MustLoad()), nil
	})
}

func httpServerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		return http.NewServer(
			env.Must(env.ParseDefault("HTTP_ADDRESS", http.DefaultServerAddress)),
			http.WithHealthCheck(nil),
			http.WithCORSHandler(),
			http.WithRequestID(logger.MustLoad(), http.DefaultRequestIDHeader),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}
