package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{MaxConns: 25, MinConns: 5},
		JWT:      JWTConfig{Secret: "0123456789abcdef", ExpirationHours: 24},
		Log:      LogConfig{Level: "info"},
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-config-loading")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ACCOUNT_DELETE_ATOMIC", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.False(t, cfg.Account.AtomicDelete)
	assert.Equal(t, 24*time.Hour, cfg.JWT.GetExpiration())

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "u",
		Password: "p",
		Name:     "tracker",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://u:p@db:5433/tracker?sslmode=disable", d.DSN())
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	cfg.JWT.Secret = "short"
	cfg.JWT.ExpirationHours = 0
	cfg.Database.MinConns = 50
	cfg.Log.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS")
	assert.Contains(t, err.Error(), "DB_MIN_CONNS")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
