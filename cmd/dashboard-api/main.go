package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/api"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/config"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/repo"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/telemetry"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/vault"
)

func main() {
	cfg := config.Get()

	// Инициализируем structured logging
	logger := telemetry.SetupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting dashboard-api")
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	// Ключ проверяем до открытия пула: os.Exit не выполняет defer
	sealer, err := vault.NewSealer(cfg.VaultKey)
	if err != nil {
		logger.Error("invalid vault encryption key", "error", err)
		os.Exit(1)
	}
	if sealer.Enabled() {
		logger.Info("secret values are sealed at rest")
	}

	// Хранилище: ошибки подключения не мешают старту
	db := repo.Open(context.Background(), cfg, logger)
	defer db.Close()

	handlerCfg := api.Config{
		Clients:      repo.NewClientRepo(db),
		Projects:     repo.NewProjectRepo(db),
		Environments: repo.NewEnvironmentRepo(db),
		Servers:      repo.NewServerRepo(db),
		Monitors:     repo.NewMonitorRepo(db),
		Settings:     repo.NewSettingRepo(db),
		Secrets:      repo.NewSecretRepo(db, sealer),
		Counter:      repo.NewStatsRepo(db),
		Metrics:      telemetry.NewMetrics(prometheus.DefaultRegisterer),
		QueryTimeout: cfg.DatastoreTimeout,
		Logger:       logger,
	}

	// RabbitMQ опционален
	if cfg.AMQPURL != "" {
		conn, err := mq.NewConnection(cfg.AMQPURL, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, events disabled", "error", err)
		} else {
			defer conn.Close()
			if err := mq.SetupTopology(context.Background(), conn); err != nil {
				logger.Warn("failed to declare topology, events disabled", "error", err)
			} else {
				handlerCfg.Publisher = mq.NewPublisher(conn, logger)
				logger.Info("event publishing enabled")
			}
		}
	}

	handler := api.NewHandler(handlerCfg)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	addr := cfg.Addr()

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:              addr,
		Handler:           api.CORS(cfg.AllowedOrigins)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}
