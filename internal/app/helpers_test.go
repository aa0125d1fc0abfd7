package app_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aidar/issue-tracker/internal/app"
	"github.com/aidar/issue-tracker/internal/config"
)

// TestEnvironment содержит все ресурсы необходимые для интеграционных тестов
type TestEnvironment struct {
	PostgresContainer *postgres.PostgresContainer
	App               *app.App
	Server            *httptest.Server
	DB                *pgxpool.Pool
	ctx               context.Context
}

// SetupTestEnvironment создает и инициализирует полное тестовое окружение
func SetupTestEnvironment(t *testing.T, atomicDelete bool) *TestEnvironment {
	t.Helper()
	ctx := context.Background()

	// Запускаем PostgreSQL контейнер
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("issue_tracker_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	applyMigrations(t, connStr)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "0",
			Host: "127.0.0.1",
		},
		Database: config.DatabaseConfig{
			Host:     host,
			Port:     port.Port(),
			User:     "test_user",
			Password: "test_password",
			Name:     "issue_tracker_test",
			SSLMode:  "disable",
			MaxConns: 10,
			MinConns: 1,
		},
		JWT: config.JWTConfig{
			Secret:          "test-jwt-secret-key-for-integration-tests",
			ExpirationHours: 24,
		},
		Account: config.AccountConfig{AtomicDelete: atomicDelete},
		Log:     config.LogConfig{Level: "error"},
	}
	require.NoError(t, cfg.Validate())

	application, err := app.New(cfg)
	require.NoError(t, err, "Failed to create application")

	err = application.Initialize(ctx)
	require.NoError(t, err, "Failed to initialize application")

	// Роутер приложения обслуживается тестовым сервером на свободном порту
	server := httptest.NewServer(application.Handler())

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	return &TestEnvironment{
		PostgresContainer: pgContainer,
		App:               application,
		Server:            server,
		DB:                pool,
		ctx:               ctx,
	}
}

// Cleanup очищает все тестовые ресурсы
func (te *TestEnvironment) Cleanup(t *testing.T) {
	t.Helper()

	if te.Server != nil {
		te.Server.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if te.App != nil {
		_ = te.App.Shutdown(shutdownCtx)
	}

	if te.DB != nil {
		te.DB.Close()
	}

	if te.PostgresContainer != nil {
		_ = te.PostgresContainer.Terminate(te.ctx)
	}
}

// applyMigrations применяет миграции БД
func applyMigrations(t *testing.T, connStr string) {
	t.Helper()

	db, err := sql.Open("pgx/v5", connStr)
	require.NoError(t, err, "Failed to open database connection")
	defer db.Close()

	migrationPath := filepath.Join(getProjectRoot(t), "migrations", "000001_init_schema.up.sql")

	migrationSQL, err := os.ReadFile(migrationPath)
	require.NoError(t, err, "Failed to read migration file")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "Failed to apply migration")
}

// getProjectRoot возвращает корневую директорию проекта
func getProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("Could not find project root (go.mod not found)")
		}
		dir = parent
	}
}

// Do выполняет запрос к API и декодирует JSON ответ в out (если out не nil)
func (te *TestEnvironment) Do(t *testing.T, method, path string, body any, token string, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, te.Server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := te.Server.Client().Do(req)
	require.NoError(t, err, "Failed to make request")
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

// Count выполняет SELECT COUNT(*) с условием напрямую в БД
func (te *TestEnvironment) Count(t *testing.T, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, te.DB.QueryRow(te.ctx, query, args...).Scan(&n))
	return n
}
