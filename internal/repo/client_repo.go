package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

const clientColumns = `c.id, c.name, COALESCE(c.description, ''),
	COALESCE(c."projectCount", 0), COALESCE(c."environmentCount", 0),
	COALESCE(c.status, ''), c."lastActivity"`

// projectsOfClient — join-раскрытие проектов клиента одним уровнем.
const projectsOfClient = `COALESCE((
	SELECT json_agg(p ORDER BY p."createdAt")
	FROM projects p
	WHERE p."clientId" = c.id
), '[]'::json)`

// ClientRepo — репозиторий для работы с clients.
type ClientRepo struct {
	db *DB
}

// NewClientRepo создаёт новый ClientRepo.
func NewClientRepo(db *DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// List возвращает всех клиентов вместе с проектами.
func (r *ClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + `, ` + projectsOfClient + ` FROM clients c`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr(err, "list clients")
	}
	clients, err := collect(rows, scanClientWithProjects)
	if err != nil {
		return nil, wrapErr(err, "scan client")
	}
	return clients, nil
}

// GetByID возвращает клиента по ID вместе с проектами.
func (r *ClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + `, ` + projectsOfClient + ` FROM clients c WHERE c.id = $1`
	client, err := scanClientWithProjects(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr(err, "get client by id")
	}
	return client, nil
}

// Create создаёт клиента и возвращает вставленную строку.
func (r *ClientRepo) Create(ctx context.Context, in domain.ClientCreate) (*domain.Client, error) {
	query := `
		INSERT INTO clients AS c (name, description, status)
		VALUES ($1, $2, $3)
		RETURNING ` + clientColumns
	client, err := scanClient(r.db.QueryRow(ctx, query, in.Name, in.Description, in.Status))
	if err != nil {
		return nil, wrapErr(err, "insert client")
	}
	client.Projects = []domain.Project{}
	return client, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.ProjectCount,
		&c.EnvironmentCount,
		&c.Status,
		&c.LastActivity,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanClientWithProjects(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.ProjectCount,
		&c.EnvironmentCount,
		&c.Status,
		&c.LastActivity,
		&c.Projects,
	)
	if err != nil {
		return nil, err
	}
	c.Projects = normalizeProjects(c.Projects)
	return &c, nil
}
