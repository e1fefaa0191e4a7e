package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

const settingColumns = `st.id, st.key, COALESCE(st.value, ''), COALESCE(st.description, '')`

// SettingRepo — репозиторий для работы с settings.
type SettingRepo struct {
	db *DB
}

// NewSettingRepo создаёт новый SettingRepo.
func NewSettingRepo(db *DB) *SettingRepo {
	return &SettingRepo{db: db}
}

// List возвращает все настройки.
func (r *SettingRepo) List(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT `+settingColumns+` FROM settings st ORDER BY st.key`)
	if err != nil {
		return nil, wrapErr(err, "list settings")
	}
	settings, err := collect(rows, scanSetting)
	if err != nil {
		return nil, wrapErr(err, "scan setting")
	}
	return settings, nil
}

// GetByID возвращает настройку по ID.
func (r *SettingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Setting, error) {
	setting, err := scanSetting(r.db.QueryRow(ctx, `SELECT `+settingColumns+` FROM settings st WHERE st.id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "get setting by id")
	}
	return setting, nil
}

// Create создаёт настройку и возвращает вставленную строку.
func (r *SettingRepo) Create(ctx context.Context, in domain.SettingCreate) (*domain.Setting, error) {
	query := `
		INSERT INTO settings AS st (key, value, description)
		VALUES ($1, $2, $3)
		RETURNING ` + settingColumns
	setting, err := scanSetting(r.db.QueryRow(ctx, query, in.Key, in.Value, in.Description))
	if err != nil {
		return nil, wrapErr(err, "insert setting")
	}
	return setting, nil
}

// UpdateValue меняет только value настройки.
// ErrNotFound, если строка не обновилась.
func (r *SettingRepo) UpdateValue(ctx context.Context, id uuid.UUID, value string) (*domain.Setting, error) {
	query := `
		UPDATE settings AS st
		SET value = $2
		WHERE st.id = $1
		RETURNING ` + settingColumns
	setting, err := scanSetting(r.db.QueryRow(ctx, query, id, value))
	if err != nil {
		return nil, wrapErr(err, "update setting")
	}
	return setting, nil
}

func scanSetting(row pgx.Row) (*domain.Setting, error) {
	var s domain.Setting
	if err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Description); err != nil {
		return nil, err
	}
	return &s, nil
}
