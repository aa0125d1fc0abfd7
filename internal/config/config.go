package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Минимальная длина секрета для подписи HS256
const minJWTSecretLength = 16

// Config содержит всю конфигурацию приложения
type Config struct {
	Server   ServerConfig   // Настройки HTTP сервера
	Database DatabaseConfig // Настройки подключения к БД
	JWT      JWTConfig      // Настройки JWT авторизации
	Account  AccountConfig  // Настройки операций с учетной записью
	Log      LogConfig      // Настройки логирования
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"issue_tracker"`
	Password string `envconfig:"DB_PASSWORD" default:"issue_tracker_pass"`
	Name     string `envconfig:"DB_NAME" default:"issue_tracker"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`
}

// JWTConfig содержит настройки JWT авторизации
type JWTConfig struct {
	Secret          string `envconfig:"JWT_SECRET" required:"true"`
	ExpirationHours int    `envconfig:"JWT_EXPIRATION_HOURS" default:"24"`
}

// AccountConfig содержит настройки удаления учетной записи
type AccountConfig struct {
	// AtomicDelete включает выполнение каскадного удаления в одной транзакции
	AtomicDelete bool `envconfig:"ACCOUNT_DELETE_ATOMIC" default:"true"`
}

// LogConfig содержит настройки логирования
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// GetExpiration возвращает срок действия токена как time.Duration
func (j JWTConfig) GetExpiration() time.Duration {
	return time.Duration(j.ExpirationHours) * time.Hour
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// SlogLevel переводит LOG_LEVEL в slog.Level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", l.Level)
	}
	return level, nil
}

// Validate проверяет конфигурацию и возвращает все найденные проблемы сразу
func (c Config) Validate() error {
	var result *multierror.Error

	if len(c.JWT.Secret) < minJWTSecretLength {
		result = multierror.Append(result, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength))
	}
	if c.JWT.ExpirationHours <= 0 {
		result = multierror.Append(result, errors.New("JWT_EXPIRATION_HOURS must be positive"))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		result = multierror.Append(result, errors.New("DB_MIN_CONNS must not exceed DB_MAX_CONNS"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Load читает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	// Отсутствие .env не ошибка, значения берутся из окружения
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
