package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

const monitorColumns = `m.id, m.name, COALESCE(m.url, ''), COALESCE(m.status, ''),
	COALESCE(m."responseTime", 0), COALESCE(m.uptime, 0), m."lastCheck",
	COALESCE(m.incidents, 0), COALESCE(m."downtimeToday", '')`

// MonitorRepo — репозиторий для работы с monitors.
type MonitorRepo struct {
	db *DB
}

// NewMonitorRepo создаёт новый MonitorRepo.
func NewMonitorRepo(db *DB) *MonitorRepo {
	return &MonitorRepo{db: db}
}

// List возвращает все мониторы.
func (r *MonitorRepo) List(ctx context.Context) ([]domain.Monitor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+monitorColumns+` FROM monitors m`)
	if err != nil {
		return nil, wrapErr(err, "list monitors")
	}
	monitors, err := collect(rows, scanMonitor)
	if err != nil {
		return nil, wrapErr(err, "scan monitor")
	}
	return monitors, nil
}

// GetByID возвращает монитор по ID.
func (r *MonitorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Monitor, error) {
	monitor, err := scanMonitor(r.db.QueryRow(ctx, `SELECT `+monitorColumns+` FROM monitors m WHERE m.id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "get monitor by id")
	}
	return monitor, nil
}

// Create создаёт монитор и возвращает вставленную строку.
func (r *MonitorRepo) Create(ctx context.Context, in domain.MonitorCreate) (*domain.Monitor, error) {
	query := `
		INSERT INTO monitors AS m (name, url)
		VALUES ($1, $2)
		RETURNING ` + monitorColumns
	monitor, err := scanMonitor(r.db.QueryRow(ctx, query, in.Name, in.URL))
	if err != nil {
		return nil, wrapErr(err, "insert monitor")
	}
	return monitor, nil
}

func scanMonitor(row pgx.Row) (*domain.Monitor, error) {
	var m domain.Monitor
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.URL,
		&m.Status,
		&m.ResponseTime,
		&m.Uptime,
		&m.LastCheck,
		&m.Incidents,
		&m.DowntimeToday,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
