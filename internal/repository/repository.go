// Package repository owns the embedded SQLite store: the course, lesson,
// enrollment and progress relations plus every read/write primitive over
// them. Callers above this package never see database/sql types.
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
	"learnhub/internal/config"
	"learnhub/internal/db/migrations"
	"learnhub/internal/logging"
)

type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL query builder
}

// NewRepository opens (creating if absent) the SQLite file configured in cfg.
// The schema is not touched here; call Migrate before first use.
func NewRepository(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", cfg.Database.Path, err)
	}

	// One connection: the store serializes all disk access through a single
	// handle, which also keeps SQLITE_BUSY out of the picture.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Repository{
		DB:      db,
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close releases the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// Migrate brings the schema up to the latest embedded migration.
// Idempotent; safe to run on every launch without touching existing data.
func (s *Repository) Migrate() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// MigrateDown rolls the schema back by one version.
func (s *Repository) MigrateDown() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Down(s.DB, "."); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

// MigrateStatus dumps the migration status for the current database.
func (s *Repository) MigrateStatus() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return goose.Status(s.DB, ".")
}

// Reset drops all four relations, recreates them and repopulates the fixed
// seed catalog. Development bootstrapping only; never part of normal flow.
func (s *Repository) Reset() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.DownTo(s.DB, ".", 0); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}
	s.Cache.Flush()

	seeded, err := s.SeedIfEmpty()
	if err != nil {
		return err
	}
	if !seeded {
		logging.Log.Warn("Reset: store not empty after recreate, seed skipped")
	}
	return nil
}
