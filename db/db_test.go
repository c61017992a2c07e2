package db

import (
	"context"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/config"
	"github.com/user/taskboard-go/migrations"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"000001_create_users.up.sql",
		"000001_create_users.down.sql",
		"000002_create_tasks.up.sql",
		"000002_create_tasks.down.sql",
	}, files)

	src, err := iofs.New(migrations.FS, ".")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.EqualValues(t, 1, first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.EqualValues(t, 2, next)
}

func TestIncompleteConfigIsRejectedBeforeConnecting(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "localhost", Port: 5432}

	_, err := NewPool(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, apperror.ConfigError, apperror.FromError(err).Type)

	err = RunMigrations(cfg)
	assert.Equal(t, apperror.ConfigError, apperror.FromError(err).Type)

	err = RollbackMigration(cfg)
	assert.Equal(t, apperror.ConfigError, apperror.FromError(err).Type)

	_, _, err = MigrationVersion(cfg)
	assert.Equal(t, apperror.ConfigError, apperror.FromError(err).Type)
}
