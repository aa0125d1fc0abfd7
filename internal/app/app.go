package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aidar/issue-tracker/internal/config"
	"github.com/aidar/issue-tracker/internal/handler"
	"github.com/aidar/issue-tracker/internal/middleware"
	"github.com/aidar/issue-tracker/internal/repository/postgres"
	"github.com/aidar/issue-tracker/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	server *http.Server
	logger *slog.Logger
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Подключаемся к базе данных
	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully")
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// Handler возвращает корневой HTTP обработчик (доступен после Initialize)
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	// Инициализируем слой репозиториев (работа с БД)
	userRepo := postgres.NewUserRepository(a.db)
	orgRepo := postgres.NewOrganizationRepository(a.db)
	issueRepo := postgres.NewIssueRepository(a.db)
	transactor := postgres.NewTransactor(a.db)

	// Инициализируем слой сервисов (бизнес-логика)
	authService := service.NewAuthService(
		userRepo,
		a.config.JWT.Secret,
		a.config.JWT.GetExpiration(),
	)
	userService := service.NewUserService(userRepo)
	orgService := service.NewOrganizationService(orgRepo, userRepo)
	issueService := service.NewIssueService(issueRepo, orgService)
	accountService := service.NewAccountService(
		userRepo,
		orgRepo,
		issueRepo,
		transactor,
		a.config.Account.AtomicDelete,
		a.logger,
	)
	statsService := service.NewStatsService(userRepo, orgRepo, issueRepo)

	// Инициализируем HTTP обработчики
	authHandler := handler.NewAuthHandler(authService)
	meHandler := handler.NewMeHandler(userService, accountService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	issueHandler := handler.NewIssueHandler(issueService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Инициализируем middleware для JWT авторизации
	authMiddleware := middleware.AuthMiddleware(authService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Метрики Prometheus
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Публичные эндпоинты (без авторизации)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Защищенные эндпоинты (требуют JWT токен в заголовке Authorization)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			// Текущая учетная запись
			r.Get("/me", meHandler.Get)
			r.Delete("/me", meHandler.Delete)

			// Организации и участники
			r.Post("/orgs", orgHandler.Create)
			r.Get("/orgs", orgHandler.List)
			r.Get("/orgs/{orgID}", orgHandler.Get)
			r.Post("/orgs/{orgID}/members", orgHandler.AddMember)
			r.Delete("/orgs/{orgID}/members/{userID}", orgHandler.RemoveMember)

			// Задачи организации
			r.Post("/orgs/{orgID}/issues", issueHandler.Create)
			r.Get("/orgs/{orgID}/issues", issueHandler.List)
			r.Post("/orgs/{orgID}/issues/{issueID}/close", issueHandler.Close)

			// Статистика
			r.Get("/stats", statsHandler.GetStats)
		})
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
