package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/verbum-domini-api/pkg/schema/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not map to a bindvar style
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the configured database and verifies connectivity. The
// caller owns the handle and must Close it.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		return openPostgres(ctx, cfg.DatabaseURL)
	case DriverSQLite:
		return openSQLite(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

func openPostgres(ctx context.Context, uri string) (*sqlx.DB, error) {
	pgDB, err := sqlx.ConnectContext(ctx, DriverPostgres, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Configure connection pool
	pgDB.SetMaxOpenConns(25)
	pgDB.SetMaxIdleConns(25)
	pgDB.SetConnMaxLifetime(5 * time.Minute)
	pgDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := pgDB.PingContext(ctx); err != nil {
		pgDB.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	return pgDB, nil
}

func openSQLite(ctx context.Context, dsn string) (*sqlx.DB, error) {
	liteDB, err := sqlx.ConnectContext(ctx, DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite serializes writers; a single connection also keeps in-memory
	// databases alive and shared.
	liteDB.SetMaxOpenConns(1)

	if _, err := liteDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		liteDB.Close()
		return nil, fmt.Errorf("failed to enable SQLite foreign keys: %w", err)
	}
	return liteDB, nil
}

// Ping reports whether the database answers
func Ping(ctx context.Context, conn *sqlx.DB) error {
	if conn == nil {
		return fmt.Errorf("database connection not available")
	}
	return conn.PingContext(ctx)
}
