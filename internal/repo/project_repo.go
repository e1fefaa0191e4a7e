package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

const projectColumns = `p.id, p.name, p."clientId", COALESCE(p.description, ''),
	COALESCE(p.status, ''), COALESCE(p.progress, 0), p.team, p."lastDeployment",
	COALESCE(p.repository, ''), p.technology, p."createdAt"`

// environmentsOfProject — join-раскрытие окружений проекта одним уровнем.
const environmentsOfProject = `COALESCE((
	SELECT json_agg(e ORDER BY e.name)
	FROM environments e
	WHERE e."projectId" = p.id
), '[]'::json)`

// ProjectRepo — репозиторий для работы с projects.
type ProjectRepo struct {
	db *DB
}

// NewProjectRepo создаёт новый ProjectRepo.
func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// List возвращает все проекты вместе с окружениями.
func (r *ProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + `, ` + environmentsOfProject + ` FROM projects p`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr(err, "list projects")
	}
	projects, err := collect(rows, scanProjectWithEnvironments)
	if err != nil {
		return nil, wrapErr(err, "scan project")
	}
	return projects, nil
}

// GetByID возвращает проект по ID вместе с окружениями.
func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + `, ` + environmentsOfProject + ` FROM projects p WHERE p.id = $1`
	project, err := scanProjectWithEnvironments(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr(err, "get project by id")
	}
	return project, nil
}

// Create создаёт проект и возвращает вставленную строку.
func (r *ProjectRepo) Create(ctx context.Context, in domain.ProjectCreate) (*domain.Project, error) {
	query := `
		INSERT INTO projects AS p (name, "clientId", description, repository, technology)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + projectColumns
	project, err := scanProject(r.db.QueryRow(ctx, query,
		in.Name,
		in.ClientID,
		in.Description,
		in.Repository,
		in.Technology,
	))
	if err != nil {
		return nil, wrapErr(err, "insert project")
	}
	project.Environments = []domain.Environment{}
	return project, nil
}

func projectScanTargets(p *domain.Project) []any {
	return []any{
		&p.ID,
		&p.Name,
		&p.ClientID,
		&p.Description,
		&p.Status,
		&p.Progress,
		&p.Team,
		&p.LastDeployment,
		&p.Repository,
		&p.Technology,
		&p.CreatedAt,
	}
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(projectScanTargets(&p)...); err != nil {
		return nil, err
	}
	p.Team = orEmpty(p.Team)
	p.Technology = orEmpty(p.Technology)
	return &p, nil
}

func scanProjectWithEnvironments(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(append(projectScanTargets(&p), &p.Environments)...); err != nil {
		return nil, err
	}
	p.Team = orEmpty(p.Team)
	p.Technology = orEmpty(p.Technology)
	p.Environments = normalizeEnvironments(p.Environments)
	return &p, nil
}
