// ABOUTME: SQL storage built on the bun ORM for user profiles and instance settings
// ABOUTME: Supports SQLite (mattn/go-sqlite3) and PostgreSQL (pgx) through bun dialects

package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"profile-translate-api/pkg/config"
)

// DB wraps a bun database handle and hands out typed stores
type DB struct {
	bun *bun.DB
}

// Open connects to the configured database
func Open(cfg config.DatabaseConfig) (*DB, error) {
	var (
		driver string
		newDB  func(*sql.DB) *bun.DB
	)

	switch cfg.Type {
	case "sqlite":
		driver = "sqlite3"
		newDB = func(sqlDB *sql.DB) *bun.DB { return bun.NewDB(sqlDB, sqlitedialect.New()) }
	case "postgres":
		driver = "pgx"
		newDB = func(sqlDB *sql.DB) *bun.DB { return bun.NewDB(sqlDB, pgdialect.New()) }
	default:
		return nil, fmt.Errorf("unsupported database type: %q", cfg.Type)
	}

	sqlDB, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Type, err)
	}

	// SQLite allows a single writer; an in-memory database also lives on one connection
	if cfg.Type == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Type, err)
	}

	return &DB{bun: newDB(sqlDB)}, nil
}

// InitSchema creates the tables if they don't exist
func (db *DB) InitSchema(ctx context.Context) error {
	models := []interface{}{
		(*userProfileModel)(nil),
		(*metaModel)(nil),
	}

	for _, model := range models {
		if _, err := db.bun.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Profiles returns the user profile store
func (db *DB) Profiles() *ProfileStore {
	return &ProfileStore{db: db.bun}
}

// Meta returns the instance settings store
func (db *DB) Meta() *MetaStore {
	return &MetaStore{db: db.bun}
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.bun.Close()
}
