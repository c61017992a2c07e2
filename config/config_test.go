package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var allKeys = []string{
	"CONFIG_FILE", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_SSLMODE", "DB_POOL_SIZE", "DB_AUTO_MIGRATE", "JWT_SECRET", "JWT_TOKEN_DURATION",
	"BCRYPT_COST", "PORT", "REQUEST_TIMEOUT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every key LoadConfig reads; blank values are treated as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxSize)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_CollectsErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_TOKEN_DURATION", "forever")
	t.Setenv("LOG_FORMAT", "xml")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)

	msg := err.Error()
	assert.Contains(t, msg, "missing required environment variable: JWT_SECRET")
	assert.Contains(t, msg, "invalid value for DB_PORT")
	assert.Contains(t, msg, "invalid value for JWT_TOKEN_DURATION")
	assert.Contains(t, msg, "LOG_FORMAT")
}

func TestLoadConfig_PoolSizeAndCostBounds(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("DB_POOL_SIZE", "500")
	t.Setenv("BCRYPT_COST", "99")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than maximum 100")
	assert.Contains(t, err.Error(), "BCRYPT_COST must be between")
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database:
  url: postgres://app:${TEST_DB_PASSWORD}@db:5432/tasks?sslmode=disable
  pool_size: 20
  auto_migrate: false
auth:
  jwt_secret: from-file
  token_duration: 1h
server:
  port: "9000"
  cors_allowed_origins: ["https://a.example", "https://b.example"]
log:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TEST_DB_PASSWORD", "pw")
	t.Setenv("PORT", "9100")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:pw@db:5432/tasks?sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 20, cfg.Database.MaxSize)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "9100", cfg.Server.Port, "environment wins over the file")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestDatabaseConfig_ValidateAndDSN(t *testing.T) {
	c := &DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", DBName: "d", SSLMode: "require"}
	require.NoError(t, c.Validate())
	assert.Equal(t, "postgres://u:p@h:5433/d?sslmode=require", c.DSN())

	empty := &DatabaseConfig{}
	err := empty.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER, DB_NAME")

	withURL := &DatabaseConfig{URL: "postgres://x"}
	require.NoError(t, withURL.Validate())
	assert.Equal(t, "postgres://x", withURL.DSN())
}
