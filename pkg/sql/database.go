package sql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultConnectionTimeout = 20 * time.Second
)

type Config struct {
	Driver             string
	DSN                string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnectionTimeout  time.Duration
}

type PostgresDSN struct {
	User     string
	Password string
	Address  string
	Database string
	SSLMode  string
}

func (d PostgresDSN) String() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Address,
		Path:     "/" + d.Database,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

type Client interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	DriverName() string
}

type Database interface {
	Client
	SQLDB() *sql.DB
	Ping(ctx context.Context) error
	Close(ctx context.Context)
}

type database struct {
	impl   *sqlx.DB
	logger log.Logger
}

func NewDatabase(ctx context.Context, config *Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	db, err := openConnection(ctx, config)
	if err != nil {
		return nil, err
	}

	return WrapDatabase(db, logger), nil
}

// WrapDatabase adopts an already opened connection pool.
func WrapDatabase(db *sqlx.DB, logger log.Logger) Database {
	return &database{
		impl:   db,
		logger: logger,
	}
}

func (d *database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.impl.ExecContext(ctx, query, args...)
}

func (d *database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.impl.GetContext(ctx, dest, query, args...)
}

func (d *database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.impl.SelectContext(ctx, dest, query, args...)
}

func (d *database) DriverName() string {
	return d.impl.DriverName()
}

func (d *database) SQLDB() *sql.DB {
	return d.impl.DB
}

func (d *database) Ping(ctx context.Context) error {
	return d.impl.PingContext(ctx)
}

func (d *database) Close(ctx context.Context) {
	err := d.impl.Close()
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

// StatementBuilder returns a squirrel builder with placeholders of the client driver.
func StatementBuilder(client Client) sq.StatementBuilderType {
	if client.DriverName() == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func openConnection(ctx context.Context, config *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", config.Driver, err)
	}
	if config.MaxOpenConnections > 0 {
		db.SetMaxOpenConns(config.MaxOpenConnections)
	}
	if config.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(config.MaxIdleConnections)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", config.Driver, err)
	}
	return db, nil
}
