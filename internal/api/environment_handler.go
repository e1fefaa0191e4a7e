package api

import (
	"net/http"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
)

// ListEnvironments возвращает окружения с серверами.
// GET /api/environments
func (h *Handler) ListEnvironments(w http.ResponseWriter, r *http.Request) {
	listResource(h, w, r, "environments", h.environments.List)
}

// GetEnvironment возвращает окружение по ID.
// GET /api/environments/{id}
func (h *Handler) GetEnvironment(w http.ResponseWriter, r *http.Request) {
	getResource(h, w, r, "Environment", h.environments.GetByID)
}

// CreateEnvironment создаёт окружение.
// POST /api/environments
func (h *Handler) CreateEnvironment(w http.ResponseWriter, r *http.Request) {
	env, ok := createResource(h, w, r, "Environment", h.environments.Create)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventEnvironmentCreated, env)
}
