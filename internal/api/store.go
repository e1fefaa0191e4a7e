package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/repo"
)

// ClientStore — хранилище клиентов.
type ClientStore interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Create(ctx context.Context, in domain.ClientCreate) (*domain.Client, error)
}

// ProjectStore — хранилище проектов.
type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, in domain.ProjectCreate) (*domain.Project, error)
}

// EnvironmentStore — хранилище окружений.
type EnvironmentStore interface {
	List(ctx context.Context) ([]domain.Environment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Environment, error)
	Create(ctx context.Context, in domain.EnvironmentCreate) (*domain.Environment, error)
}

// ServerStore — хранилище серверов.
type ServerStore interface {
	List(ctx context.Context) ([]domain.Server, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Server, error)
	Create(ctx context.Context, in domain.ServerCreate) (*domain.Server, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ServerStatus) (*domain.Server, error)
}

// MonitorStore — хранилище мониторов.
type MonitorStore interface {
	List(ctx context.Context) ([]domain.Monitor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Monitor, error)
	Create(ctx context.Context, in domain.MonitorCreate) (*domain.Monitor, error)
}

// SettingStore — хранилище настроек.
type SettingStore interface {
	List(ctx context.Context) ([]domain.Setting, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Setting, error)
	Create(ctx context.Context, in domain.SettingCreate) (*domain.Setting, error)
	UpdateValue(ctx context.Context, id uuid.UUID, value string) (*domain.Setting, error)
}

// SecretStore — хранилище секретов.
type SecretStore interface {
	List(ctx context.Context) ([]domain.Secret, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Secret, error)
	Create(ctx context.Context, in domain.SecretCreate) (*domain.Secret, error)
	UpdateValue(ctx context.Context, id uuid.UUID, value string) (*domain.Secret, error)
}

// Counter считает строки в таблице без выборки данных.
type Counter interface {
	Count(ctx context.Context, table repo.Table) (int64, error)
}

// EventPublisher публикует события об изменениях.
type EventPublisher interface {
	Publish(ctx context.Context, eventType mq.EventType, payload any) error
}

var (
	_ ClientStore      = (*repo.ClientRepo)(nil)
	_ ProjectStore     = (*repo.ProjectRepo)(nil)
	_ EnvironmentStore = (*repo.EnvironmentRepo)(nil)
	_ ServerStore      = (*repo.ServerRepo)(nil)
	_ MonitorStore     = (*repo.MonitorRepo)(nil)
	_ SettingStore     = (*repo.SettingRepo)(nil)
	_ SecretStore      = (*repo.SecretRepo)(nil)
	_ Counter          = (*repo.StatsRepo)(nil)
	_ EventPublisher   = (*mq.Publisher)(nil)
)
