package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aidar/issue-tracker/internal/app"
	"github.com/aidar/issue-tracker/internal/config"
)

// Время на завершение текущих запросов при остановке
const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Issue tracker stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Загружаем конфигурацию из .env и переменных окружения
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}

	// Подключение к БД и настройка роутинга
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Initialize(ctx); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ждем сигнал остановки (Ctrl+C или SIGTERM) либо падение сервера
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return application.Shutdown(shutdownCtx)
}
