// Package main запускает HTTP-сервис записи студентов на школьные кружки
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activities-service/internal/config"
	httpapi "activities-service/internal/http"
	"activities-service/internal/registry"
	"activities-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Чтение конфигурации: defaults -> файл -> ENV
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// 1. Seed-каталог кружков: встроенный либо из файла
	seed := registry.DefaultCatalog()
	if cfg.SeedFile != "" {
		seed, err = config.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatalf("failed to load seed file: %v", err)
		}
		logger.Info("loaded activity catalog from file",
			slog.String("path", cfg.SeedFile),
			slog.Int("activities", len(seed)),
		)
	}

	// 2. Инициализация реестра в памяти
	reg := registry.New(seed)

	// 3. Инициализация сервиса
	activityService := service.NewActivityService(reg)

	// 4. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(activityService, logger)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.Int("activities", len(seed)),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(
		context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
