package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/config"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/telemetry"
)

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	clients      ClientStore
	projects     ProjectStore
	environments EnvironmentStore
	servers      ServerStore
	monitors     MonitorStore
	settings     SettingStore
	secrets      SecretStore
	counter      Counter
	publisher    EventPublisher
	metrics      *telemetry.Metrics
	validate     *validator.Validate
	timeout      time.Duration
	logger       *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Clients      ClientStore
	Projects     ProjectStore
	Environments EnvironmentStore
	Servers      ServerStore
	Monitors     MonitorStore
	Settings     SettingStore
	Secrets      SecretStore
	Counter      Counter

	// Publisher опционален.
	Publisher EventPublisher

	// Metrics опционален.
	Metrics *telemetry.Metrics

	// QueryTimeout ограничивает каждое обращение к хранилищу.
	QueryTimeout time.Duration

	Logger *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = config.DefaultDatastoreTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		clients:      cfg.Clients,
		projects:     cfg.Projects,
		environments: cfg.Environments,
		servers:      cfg.Servers,
		monitors:     cfg.Monitors,
		settings:     cfg.Settings,
		secrets:      cfg.Secrets,
		counter:      cfg.Counter,
		publisher:    cfg.Publisher,
		metrics:      cfg.Metrics,
		validate:     newValidator(),
		timeout:      timeout,
		logger:       logger,
	}
}

// dbContext возвращает контекст запроса с таймаутом на обращение к хранилищу.
func (h *Handler) dbContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// publish отправляет событие, если publisher настроен.
// Ошибка публикации не влияет на ответ клиенту.
func (h *Handler) publish(ctx context.Context, eventType mq.EventType, payload any) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, eventType, payload); err != nil {
		h.logger.Warn("failed to publish event", "type", eventType, "error", err)
	}
}
