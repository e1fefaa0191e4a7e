package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/vault"
)

const secretColumns = `sc.id, sc.key, COALESCE(sc.value, ''), COALESCE(sc.environment, ''), sc."lastUpdated"`

// SecretRepo — репозиторий для работы с secrets.
//
// Если sealer задан, значения шифруются перед записью и расшифровываются
// при чтении. nil sealer хранит значения открытым текстом.
type SecretRepo struct {
	db     *DB
	sealer *vault.Sealer
}

// NewSecretRepo создаёт новый SecretRepo.
func NewSecretRepo(db *DB, sealer *vault.Sealer) *SecretRepo {
	return &SecretRepo{db: db, sealer: sealer}
}

// List возвращает все секреты с расшифрованными значениями.
func (r *SecretRepo) List(ctx context.Context) ([]domain.Secret, error) {
	rows, err := r.db.Query(ctx, `SELECT `+secretColumns+` FROM secrets sc ORDER BY sc.environment, sc.key`)
	if err != nil {
		return nil, wrapErr(err, "list secrets")
	}
	secrets, err := collect(rows, r.scanSecret)
	if err != nil {
		return nil, wrapErr(err, "scan secret")
	}
	return secrets, nil
}

// GetByID возвращает секрет по ID.
func (r *SecretRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Secret, error) {
	secret, err := r.scanSecret(r.db.QueryRow(ctx, `SELECT `+secretColumns+` FROM secrets sc WHERE sc.id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "get secret by id")
	}
	return secret, nil
}

// Create создаёт секрет и возвращает вставленную строку.
func (r *SecretRepo) Create(ctx context.Context, in domain.SecretCreate) (*domain.Secret, error) {
	stored, err := r.sealer.Seal(in.Value)
	if err != nil {
		return nil, fmt.Errorf("seal secret: %w", err)
	}

	query := `
		INSERT INTO secrets AS sc (key, value, environment, "lastUpdated")
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + secretColumns
	secret, err := r.scanSecret(r.db.QueryRow(ctx, query, in.Key, stored, in.Environment))
	if err != nil {
		return nil, wrapErr(err, "insert secret")
	}
	return secret, nil
}

// UpdateValue ротирует значение секрета.
// ErrNotFound, если строка не обновилась.
func (r *SecretRepo) UpdateValue(ctx context.Context, id uuid.UUID, value string) (*domain.Secret, error) {
	stored, err := r.sealer.Seal(value)
	if err != nil {
		return nil, fmt.Errorf("seal secret: %w", err)
	}

	query := `
		UPDATE secrets AS sc
		SET value = $2, "lastUpdated" = NOW()
		WHERE sc.id = $1
		RETURNING ` + secretColumns
	secret, err := r.scanSecret(r.db.QueryRow(ctx, query, id, stored))
	if err != nil {
		return nil, wrapErr(err, "update secret")
	}
	return secret, nil
}

func (r *SecretRepo) scanSecret(row pgx.Row) (*domain.Secret, error) {
	var s domain.Secret
	if err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Environment, &s.LastUpdated); err != nil {
		return nil, err
	}

	plain, err := r.sealer.Open(s.Value)
	if err != nil {
		return nil, fmt.Errorf("open secret %s: %w", s.ID, err)
	}
	s.Value = plain
	return &s, nil
}
