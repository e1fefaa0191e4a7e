package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/config"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/telemetry"
)

func TestOpen_InvalidURLFailsPerQuery(t *testing.T) {
	db := Open(context.Background(), config.Config{SupabaseURL: "postgres://host:notaport/db"}, telemetry.Discard())
	require.NotNil(t, db)
	defer db.Close()

	_, err := NewClientRepo(db).List(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewStatsRepo(db).Count(context.Background(), TableClients)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUnavailable_AllRepos(t *testing.T) {
	db := Unavailable(errors.New("boom"))
	ctx := context.Background()
	id := uuid.New()

	_, err := NewClientRepo(db).GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = NewProjectRepo(db).Create(ctx, domain.ProjectCreate{Name: "p"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewEnvironmentRepo(db).List(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewServerRepo(db).UpdateStatus(ctx, id, domain.ServerStatusRunning)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewMonitorRepo(db).List(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewSettingRepo(db).UpdateValue(ctx, id, "v")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewSecretRepo(db, nil).Create(ctx, domain.SecretCreate{Key: "k", Value: "v", Environment: "prod"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = db.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "boom")
}

func TestWrapErr(t *testing.T) {
	assert.Equal(t, ErrNotFound, wrapErr(pgx.ErrNoRows, "get"))

	err := wrapErr(errors.New("conn refused"), "list clients")
	assert.EqualError(t, err, "list clients: conn refused")

	err = wrapErr(&pgconn.PgError{Code: "23505", Detail: "Key (key)=(theme) already exists."}, "insert setting")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), "theme")
}

func TestNormalizeNested(t *testing.T) {
	projects := normalizeProjects([]domain.Project{{Name: "p"}})
	assert.NotNil(t, projects[0].Environments)
	assert.NotNil(t, projects[0].Team)
	assert.NotNil(t, projects[0].Technology)

	envs := normalizeEnvironments(nil)
	assert.NotNil(t, envs)
	assert.Empty(t, envs)

	envs = normalizeEnvironments([]domain.Environment{{Name: "prod"}})
	assert.NotNil(t, envs[0].Servers)
	assert.NotNil(t, envs[0].Services)

	assert.NotNil(t, normalizeServers(nil))
}
