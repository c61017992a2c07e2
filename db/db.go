// Package db provides database connectivity and migration functionality for the taskboard application.
// It builds the pgx connection pool shared by every store, defines the minimal query
// interface those stores depend on, and runs the embedded schema migrations.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	// `time` is used for setting timeouts and connection pool configurations.
	"time"

	// `golang-migrate` applies the versioned SQL files embedded in the migrations package.
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	// `pgxpool` is part of the `jackc/pgx` suite, providing a robust connection pool for PostgreSQL.
	"github.com/jackc/pgx/v5/pgxpool"
	// `lib/pq` registers the "postgres" database/sql driver used by golang-migrate's postgres driver.
	_ "github.com/lib/pq"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/config"
	"github.com/user/taskboard-go/migrations"
)

// DBTX is the subset of pgx used by the stores.
// *pgxpool.Pool, pgx.Tx and pgxmock pools all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool establishes the PostgreSQL connection pool described by cfg and verifies it
// with a ping. Sessions are pinned to UTC so calendar grouping is stable.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, apperror.NewConfigError("invalid database configuration", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, apperror.NewDatabaseError("error parsing database DSN", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.ConnConfig.RuntimeParams["timezone"] = "UTC"

	createCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(createCtx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError("error creating pgxpool", err)
	}

	// Pinging ensures that the pool can actually reach the server.
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to database %s", poolConfig.ConnConfig.Database), err)
	}

	return pool, nil
}

// newMigrator opens a database/sql handle and binds it, together with the embedded
// SQL files, to a golang-migrate instance. The caller must Close the migrator.
func newMigrator(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, apperror.NewMigrationError("failed to open embedded migrations", err)
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, apperror.NewMigrationError("failed to open migration connection", err)
	}

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		conn.Close()
		return nil, apperror.NewMigrationError("failed to create migration driver", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		conn.Close()
		return nil, apperror.NewMigrationError("failed to create migrator", err)
	}
	return m, nil
}

func closeMigrator(m *migrate.Migrate) error {
	srcErr, dbErr := m.Close()
	return errors.Join(srcErr, dbErr)
}

// RunMigrations applies every pending up migration. It is a no-op when the schema
// is already current.
func RunMigrations(cfg *config.DatabaseConfig) (err error) {
	if err := cfg.Validate(); err != nil {
		return apperror.NewConfigError("invalid database configuration", err)
	}
	m, err := newMigrator(cfg.DSN())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeMigrator(m); closeErr != nil && err == nil {
			err = apperror.NewMigrationError("failed to close migrator", closeErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError("failed to run migrations", err)
	}
	return nil
}

// RollbackMigration reverts the most recently applied migration.
func RollbackMigration(cfg *config.DatabaseConfig) (err error) {
	if err := cfg.Validate(); err != nil {
		return apperror.NewConfigError("invalid database configuration", err)
	}
	m, err := newMigrator(cfg.DSN())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeMigrator(m); closeErr != nil && err == nil {
			err = apperror.NewMigrationError("failed to close migrator", closeErr)
		}
	}()

	if err := m.Steps(-1); err != nil {
		return apperror.NewMigrationError("failed to roll back migration", err)
	}
	return nil
}

// MigrationVersion reports the currently applied schema version. A database that
// has never been migrated reports version 0.
func MigrationVersion(cfg *config.DatabaseConfig) (version uint, dirty bool, err error) {
	if err := cfg.Validate(); err != nil {
		return 0, false, apperror.NewConfigError("invalid database configuration", err)
	}
	m, err := newMigrator(cfg.DSN())
	if err != nil {
		return 0, false, err
	}
	defer func() {
		if closeErr := closeMigrator(m); closeErr != nil && err == nil {
			err = apperror.NewMigrationError("failed to close migrator", closeErr)
		}
	}()

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, apperror.NewMigrationError("failed to read migration version", err)
	}
	return version, dirty, nil
}
