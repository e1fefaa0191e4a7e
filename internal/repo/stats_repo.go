package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Table — имя таблицы, для которой разрешён подсчёт строк.
type Table string

const (
	TableClients      Table = "clients"
	TableProjects     Table = "projects"
	TableEnvironments Table = "environments"
	TableServers      Table = "servers"
	TableMonitors     Table = "monitors"
	TableSettings     Table = "settings"
	TableSecrets      Table = "secrets"
)

// StatsRepo выполняет count-запросы без выборки данных.
type StatsRepo struct {
	db *DB
}

// NewStatsRepo создаёт новый StatsRepo.
func NewStatsRepo(db *DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Count возвращает количество строк в таблице.
func (r *StatsRepo) Count(ctx context.Context, table Table) (int64, error) {
	query := `SELECT count(*) FROM ` + pgx.Identifier{string(table)}.Sanitize()

	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
