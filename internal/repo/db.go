package repo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/config"
)

// DB — общий для всех репозиториев доступ к хранилищу.
//
// Создаётся один раз при старте процесса. Если пул построить не удалось
// (например, URL не парсится), DB всё равно создаётся, но каждый запрос
// возвращает ErrUnavailable. Так ошибка видна в конкретном запросе,
// а не роняет старт.
type DB struct {
	pool *pgxpool.Pool
	err  error
}

// Open создаёт пул соединений из конфигурации.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) *DB {
	poolCfg, err := pgxpool.ParseConfig(cfg.SupabaseURL)
	if err != nil {
		logger.Warn("datastore url is invalid, all queries will fail", "error", err)
		return Unavailable(fmt.Errorf("parse datastore url: %w", err))
	}
	if cfg.SupabaseKey != "" {
		poolCfg.ConnConfig.Password = cfg.SupabaseKey
	}
	poolCfg.MaxConns = 10
	poolCfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Warn("failed to create datastore pool, all queries will fail", "error", err)
		return Unavailable(fmt.Errorf("new pool: %w", err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		logger.Warn("datastore is not reachable yet", "error", err)
	} else {
		logger.Info("connected to datastore")
	}

	return &DB{pool: pool}
}

// Unavailable возвращает DB, который отклоняет все запросы с cause.
func Unavailable(cause error) *DB {
	return &DB{err: fmt.Errorf("%w: %v", ErrUnavailable, cause)}
}

// Query выполняет запрос, возвращающий строки.
func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if db.pool == nil {
		return nil, db.err
	}
	return db.pool.Query(ctx, sql, args...)
}

// QueryRow выполняет запрос, возвращающий одну строку.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if db.pool == nil {
		return errRow{err: db.err}
	}
	return db.pool.QueryRow(ctx, sql, args...)
}

// Exec выполняет запрос без результата.
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if db.pool == nil {
		return pgconn.CommandTag{}, db.err
	}
	return db.pool.Exec(ctx, sql, args...)
}

// Close закрывает пул.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// errRow — pgx.Row, который всегда возвращает ошибку.
type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
