// Package config provides configuration management for the taskboard application.
// It handles loading and validation of configuration values from environment variables,
// with support for required variables, default values, an optional YAML file, and
// collective error reporting: every problem is gathered before LoadConfig fails, so an
// operator sees the whole list at once.
package config

import (
	"fmt"
	// `os` package provides operating system functionalities, like reading environment variables.
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DatabaseConfig represents configuration for the Postgres connection pool.
// Either URL is set, or the individual connection parts are used to build a DSN.
type DatabaseConfig struct {
	URL         string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxSize     int
	AutoMigrate bool // Run embedded migrations on `serve` startup
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // Secret key for signing JWTs
	TokenDuration time.Duration // Validity window of issued bearer tokens
	BcryptCost    int           // Work factor for password hashing
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string        // Port for the HTTP server
	RequestTimeout time.Duration // Per-request timeout applied by the router
	AllowedOrigins []string      // CORS allowed origins
}

// LogConfig controls the slog handler built at startup.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Database *DatabaseConfig
	Auth     *AuthConfig
	Server   *ServerConfig
	Log      *LogConfig
}

const (
	defaultTokenDuration  = 30 * 24 * time.Hour
	defaultRequestTimeout = 60 * time.Second
	minPoolSize           = 2
	maxPoolSize           = 100
)

// source resolves a configuration key. Environment variables win; values from the
// optional YAML file are used as fallbacks.
type source struct {
	file map[string]string
}

func (s source) lookup(key string) (string, bool) {
	if value, exists := os.LookupEnv(key); exists {
		return value, true
	}
	value, exists := s.file[key]
	return value, exists
}

// Helper function to get a required variable.
// Appends an error to the errors slice if the variable is not set.
func (s source) getRequired(key string, errors *[]string) string {
	value, exists := s.lookup(key)
	if !exists || strings.TrimSpace(value) == "" {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// Helper function to get an optional variable with a default value.
func (s source) getOptional(key string, defaultValue string) string {
	if value, exists := s.lookup(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func (s source) getOptionalInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := s.lookup(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func (s source) getOptionalBool(key string, defaultValue bool, errors *[]string) bool {
	valueStr, exists := s.lookup(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected boolean, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueBool
}

func (s source) getOptionalDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := s.lookup(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	if valueDuration <= 0 {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: duration must be positive, got '%s'", key, valueStr))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size between minPoolSize and maxPoolSize, recording a
// note when clamping happens.
func clampPoolSize(size int, errors *[]string) int {
	if size < minPoolSize {
		*errors = append(*errors, fmt.Sprintf("DB_POOL_SIZE (%d) is less than minimum %d", size, minPoolSize))
		return minPoolSize
	}
	if size > maxPoolSize {
		*errors = append(*errors, fmt.Sprintf("DB_POOL_SIZE (%d) is greater than maximum %d", size, maxPoolSize))
		return maxPoolSize
	}
	return size
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadConfig loads the application configuration.
// If CONFIG_FILE is set, the YAML file it names is read first; environment variables
// override anything it contains.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	src := source{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		values, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		src.file = values
	}

	database := &DatabaseConfig{
		URL:         src.getOptional("DATABASE_URL", ""),
		Host:        src.getOptional("DB_HOST", "localhost"),
		Port:        src.getOptionalInt("DB_PORT", 5432, &errors),
		User:        src.getOptional("DB_USER", ""),
		Password:    src.getOptional("DB_PASSWORD", ""),
		DBName:      src.getOptional("DB_NAME", ""),
		SSLMode:     src.getOptional("DB_SSLMODE", "disable"),
		MaxSize:     clampPoolSize(src.getOptionalInt("DB_POOL_SIZE", 10, &errors), &errors),
		AutoMigrate: src.getOptionalBool("DB_AUTO_MIGRATE", true, &errors),
	}

	auth := &AuthConfig{
		JWTSecret:     src.getRequired("JWT_SECRET", &errors),
		TokenDuration: src.getOptionalDuration("JWT_TOKEN_DURATION", defaultTokenDuration, &errors),
		BcryptCost:    src.getOptionalInt("BCRYPT_COST", bcrypt.DefaultCost, &errors),
	}
	if auth.BcryptCost < bcrypt.MinCost || auth.BcryptCost > bcrypt.MaxCost {
		errors = append(errors, fmt.Sprintf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, auth.BcryptCost))
	}

	server := &ServerConfig{
		Port:           src.getOptional("PORT", "8080"),
		RequestTimeout: src.getOptionalDuration("REQUEST_TIMEOUT", defaultRequestTimeout, &errors),
		AllowedOrigins: splitList(src.getOptional("CORS_ALLOWED_ORIGINS", "*")),
	}

	logCfg := &LogConfig{
		Level:  strings.ToLower(src.getOptional("LOG_LEVEL", "info")),
		Format: strings.ToLower(src.getOptional("LOG_FORMAT", "json")),
	}
	if logCfg.Format != "json" && logCfg.Format != "text" {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be 'json' or 'text', got '%s'", logCfg.Format))
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Database: database,
		Auth:     auth,
		Server:   server,
		Log:      logCfg,
	}, nil
}

// Validate checks that enough connection information is present to reach Postgres.
// It is not part of LoadConfig because the in-memory store mode needs no database.
func (c *DatabaseConfig) Validate() error {
	if c.URL != "" {
		return nil
	}
	var missing []string
	if c.User == "" {
		missing = append(missing, "DB_USER")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("database configuration incomplete: set DATABASE_URL or %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN returns the connection string for pgx and golang-migrate.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}
