package api

import (
	"net/http"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/repo"
)

// Health проверяет доступность хранилища. Всегда отвечает 200.
// GET /health, GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.dbContext(r)
	defer cancel()

	if _, err := h.counter.Count(ctx, repo.TableClients); err != nil {
		h.logger.Warn("health check: database unreachable", "error", err)
		OK(w, HealthResponse{
			Status:   "warning",
			Message:  "API is up but Database is unreachable",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	OK(w, HealthResponse{
		Status:   "ok",
		Message:  "API and Database are healthy",
		Database: "connected",
	})
}

// Root подтверждает, что сервис запущен.
// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	OK(w, MessageResponse{Message: "Backend is running successfully"})
}
