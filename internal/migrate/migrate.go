// Package migrate применяет SQL-миграции схемы дашборда через goose.
//
// Миграции встроены в бинарник, каталог на диске не нужен.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Runner применяет и откатывает миграции.
type Runner struct {
	db  *sql.DB
	log *slog.Logger
}

// New создаёт Runner из конфигурации хранилища.
func New(cfg config.Config, log *slog.Logger) (*Runner, error) {
	if cfg.SupabaseURL == "" {
		return nil, errors.New("empty datastore url")
	}

	connCfg, err := pgx.ParseConfig(cfg.SupabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse datastore url: %w", err)
	}
	if cfg.SupabaseKey != "" {
		connCfg.Password = cfg.SupabaseKey
	}
	if log == nil {
		log = slog.Default()
	}

	return &Runner{db: stdlib.OpenDB(*connCfg), log: log}, nil
}

// Up применяет все новые миграции.
func (r *Runner) Up(ctx context.Context) error {
	return r.run(ctx, func(ctx context.Context) error {
		r.log.Info("applying migrations")
		if err := goose.UpContext(ctx, r.db, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		r.log.Info("migrations applied")
		return nil
	})
}

// Status выводит список применённых и ожидающих миграций.
func (r *Runner) Status(ctx context.Context) error {
	return r.run(ctx, func(ctx context.Context) error {
		if err := goose.StatusContext(ctx, r.db, migrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		return nil
	})
}

// Down откатывает последнюю миграцию или до версии target, если она > 0.
func (r *Runner) Down(ctx context.Context, target int64) error {
	return r.run(ctx, func(ctx context.Context) error {
		if target > 0 {
			r.log.Info("rolling back migrations", "target", target)
			if err := goose.DownToContext(ctx, r.db, migrationsDir, target); err != nil {
				return fmt.Errorf("rollback to version %d: %w", target, err)
			}
		} else {
			r.log.Info("rolling back latest migration")
			if err := goose.DownContext(ctx, r.db, migrationsDir); err != nil {
				return fmt.Errorf("rollback latest migration: %w", err)
			}
		}
		r.log.Info("rollback complete")
		return nil
	})
}

// Close закрывает соединение.
func (r *Runner) Close() error {
	return r.db.Close()
}

func (r *Runner) run(ctx context.Context, fn func(context.Context) error) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping datastore: %w", err)
	}

	return fn(ctx)
}
