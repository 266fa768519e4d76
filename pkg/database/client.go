// Package database provides the database client for the hearing store.
// Production runs on PostgreSQL via pgx; development and tests fall
// back to a local SQLite file when DATABASE_URL is empty or carries a
// sqlite scheme.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	_ "modernc.org/sqlite"             // Register sqlite driver for the dev fallback
)

// Config holds database configuration.
type Config struct {
	// URL is the database URL. postgres:// / postgresql:// selects
	// PostgreSQL; sqlite://<path> or empty selects the SQLite fallback.
	URL string

	// Connection pool settings (PostgreSQL only).
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConfig returns pool defaults around the given URL.
func DefaultConfig(databaseURL string) Config {
	return Config{
		URL:             databaseURL,
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// Client wraps the Ent client and provides access to the underlying
// database handle for health checks.
type Client struct {
	*ent.Client
	db      *stdsql.DB
	dialect string
}

// DB returns the underlying database connection.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Dialect returns the active SQL dialect ("postgres" or "sqlite3").
func (c *Client) Dialect() string {
	return c.dialect
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens the database selected by cfg.URL, verifies the
// connection, and applies the schema.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	driverName, dsn, entDialect, err := resolveDriver(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := stdsql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if entDialect == dialect.Postgres {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	} else {
		// SQLite serializes writers; a single connection avoids
		// SQLITE_BUSY under concurrent transactions.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(entDialect, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Migration scripts are owned by an external component; the core
	// applies its schema directly.
	if err := entClient.Schema.Create(ctx); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Client{
		Client:  entClient,
		db:      db,
		dialect: entDialect,
	}, nil
}

// resolveDriver maps a database URL to (sql driver, DSN, ent dialect).
func resolveDriver(databaseURL string) (string, string, string, error) {
	if databaseURL == "" {
		return "sqlite", "file:canaryscope.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", dialect.SQLite, nil
	}

	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		return "pgx", databaseURL, dialect.Postgres, nil
	case "sqlite", "sqlite3":
		path := strings.TrimPrefix(databaseURL, u.Scheme+"://")
		dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
		return "sqlite", dsn, dialect.SQLite, nil
	default:
		return "", "", "", fmt.Errorf("unsupported DATABASE_URL scheme %q", u.Scheme)
	}
}
