package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

// uniqueViolation — SQLSTATE нарушения уникального индекса.
const uniqueViolation = "23505"

// wrapErr переводит pgx.ErrNoRows в ErrNotFound и добавляет контекст к остальным ошибкам.
func wrapErr(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, ErrAlreadyExists, pgErr.Detail)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// collect читает все строки через scan. Пустой результат — пустой срез, не nil.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Вложенные записи из json_agg приходят без собственных join-полей.

func normalizeProjects(projects []domain.Project) []domain.Project {
	if projects == nil {
		return []domain.Project{}
	}
	for i := range projects {
		if projects[i].Environments == nil {
			projects[i].Environments = []domain.Environment{}
		}
		projects[i].Team = orEmpty(projects[i].Team)
		projects[i].Technology = orEmpty(projects[i].Technology)
	}
	return projects
}

func normalizeEnvironments(envs []domain.Environment) []domain.Environment {
	if envs == nil {
		return []domain.Environment{}
	}
	for i := range envs {
		if envs[i].Servers == nil {
			envs[i].Servers = []domain.Server{}
		}
		envs[i].Services = orEmpty(envs[i].Services)
	}
	return envs
}

func normalizeServers(servers []domain.Server) []domain.Server {
	if servers == nil {
		return []domain.Server{}
	}
	return servers
}
