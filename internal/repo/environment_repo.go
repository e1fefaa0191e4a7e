package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

const environmentColumns = `e.id, e.name, e."projectId", COALESCE(e.status, ''),
	COALESCE(e.health, ''), COALESCE(e.url, ''), e."lastDeployment",
	COALESCE(e.version, ''), COALESCE(e.resources, '{}'::jsonb), e.services,
	COALESCE(e.uptime, 0)`

// serversOfEnvironment — join-раскрытие серверов окружения одним уровнем.
const serversOfEnvironment = `COALESCE((
	SELECT json_agg(s ORDER BY s.name)
	FROM servers s
	WHERE s."environmentId" = e.id
), '[]'::json)`

// EnvironmentRepo — репозиторий для работы с environments.
type EnvironmentRepo struct {
	db *DB
}

// NewEnvironmentRepo создаёт новый EnvironmentRepo.
func NewEnvironmentRepo(db *DB) *EnvironmentRepo {
	return &EnvironmentRepo{db: db}
}

// List возвращает все окружения вместе с серверами.
func (r *EnvironmentRepo) List(ctx context.Context) ([]domain.Environment, error) {
	query := `SELECT ` + environmentColumns + `, ` + serversOfEnvironment + ` FROM environments e`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr(err, "list environments")
	}
	envs, err := collect(rows, scanEnvironmentWithServers)
	if err != nil {
		return nil, wrapErr(err, "scan environment")
	}
	return envs, nil
}

// GetByID возвращает окружение по ID вместе с серверами.
func (r *EnvironmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Environment, error) {
	query := `SELECT ` + environmentColumns + `, ` + serversOfEnvironment + ` FROM environments e WHERE e.id = $1`
	env, err := scanEnvironmentWithServers(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr(err, "get environment by id")
	}
	return env, nil
}

// Create создаёт окружение и возвращает вставленную строку.
func (r *EnvironmentRepo) Create(ctx context.Context, in domain.EnvironmentCreate) (*domain.Environment, error) {
	query := `
		INSERT INTO environments AS e (name, "projectId", url, version, resources)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + environmentColumns
	env, err := scanEnvironment(r.db.QueryRow(ctx, query,
		in.Name,
		in.ProjectID,
		in.URL,
		in.Version,
		in.Resources,
	))
	if err != nil {
		return nil, wrapErr(err, "insert environment")
	}
	env.Servers = []domain.Server{}
	return env, nil
}

func environmentScanTargets(e *domain.Environment) []any {
	return []any{
		&e.ID,
		&e.Name,
		&e.ProjectID,
		&e.Status,
		&e.Health,
		&e.URL,
		&e.LastDeployment,
		&e.Version,
		&e.Resources,
		&e.Services,
		&e.Uptime,
	}
}

func scanEnvironment(row pgx.Row) (*domain.Environment, error) {
	var e domain.Environment
	if err := row.Scan(environmentScanTargets(&e)...); err != nil {
		return nil, err
	}
	e.Services = orEmpty(e.Services)
	return &e, nil
}

func scanEnvironmentWithServers(row pgx.Row) (*domain.Environment, error) {
	var e domain.Environment
	if err := row.Scan(append(environmentScanTargets(&e), &e.Servers)...); err != nil {
		return nil, err
	}
	e.Services = orEmpty(e.Services)
	e.Servers = normalizeServers(e.Servers)
	return &e, nil
}
