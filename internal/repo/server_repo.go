package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

const serverColumns = `s.id, s.name, COALESCE(s.type, ''), COALESCE(s.status, ''),
	COALESCE(s.cpu, ''), COALESCE(s.memory, ''), COALESCE(s.region, ''),
	COALESCE(s."privateIp", ''), s."environmentId"`

// ServerRepo — репозиторий для работы с servers.
type ServerRepo struct {
	db *DB
}

// NewServerRepo создаёт новый ServerRepo.
func NewServerRepo(db *DB) *ServerRepo {
	return &ServerRepo{db: db}
}

// List возвращает все серверы.
func (r *ServerRepo) List(ctx context.Context) ([]domain.Server, error) {
	rows, err := r.db.Query(ctx, `SELECT `+serverColumns+` FROM servers s`)
	if err != nil {
		return nil, wrapErr(err, "list servers")
	}
	servers, err := collect(rows, scanServer)
	if err != nil {
		return nil, wrapErr(err, "scan server")
	}
	return servers, nil
}

// GetByID возвращает сервер по ID.
func (r *ServerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Server, error) {
	server, err := scanServer(r.db.QueryRow(ctx, `SELECT `+serverColumns+` FROM servers s WHERE s.id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "get server by id")
	}
	return server, nil
}

// Create создаёт сервер и возвращает вставленную строку.
// Статус, cpu и memory выставляет хранилище (значения по умолчанию).
func (r *ServerRepo) Create(ctx context.Context, in domain.ServerCreate) (*domain.Server, error) {
	query := `
		INSERT INTO servers AS s (name, type, region, "privateIp", "environmentId")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + serverColumns
	server, err := scanServer(r.db.QueryRow(ctx, query,
		in.Name,
		in.Type,
		in.Region,
		in.PrivateIP,
		in.EnvironmentID,
	))
	if err != nil {
		return nil, wrapErr(err, "insert server")
	}
	return server, nil
}

// UpdateStatus меняет статус сервера и возвращает обновлённую строку.
// ErrNotFound, если строка не обновилась.
func (r *ServerRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ServerStatus) (*domain.Server, error) {
	query := `
		UPDATE servers AS s
		SET status = $2
		WHERE s.id = $1
		RETURNING ` + serverColumns
	server, err := scanServer(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		return nil, wrapErr(err, "update server status")
	}
	return server, nil
}

func scanServer(row pgx.Row) (*domain.Server, error) {
	var s domain.Server
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Type,
		&s.Status,
		&s.CPU,
		&s.Memory,
		&s.Region,
		&s.PrivateIP,
		&s.EnvironmentID,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
