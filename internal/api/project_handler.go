package api

import (
	"net/http"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
)

// ListProjects возвращает проекты с окружениями.
// GET /api/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	listResource(h, w, r, "projects", h.projects.List)
}

// GetProject возвращает проект по ID.
// GET /api/projects/{id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	getResource(h, w, r, "Project", h.projects.GetByID)
}

// CreateProject создаёт проект.
// POST /api/projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	project, ok := createResource(h, w, r, "Project", h.projects.Create)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventProjectCreated, project)
}
