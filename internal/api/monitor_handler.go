package api

import (
	"net/http"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
)

// ListMonitors возвращает все мониторы.
// GET /api/monitors
func (h *Handler) ListMonitors(w http.ResponseWriter, r *http.Request) {
	listResource(h, w, r, "monitors", h.monitors.List)
}

// GetMonitor возвращает монитор по ID.
// GET /api/monitors/{id}
func (h *Handler) GetMonitor(w http.ResponseWriter, r *http.Request) {
	getResource(h, w, r, "Monitor", h.monitors.GetByID)
}

// CreateMonitor создаёт монитор.
// POST /api/monitors
func (h *Handler) CreateMonitor(w http.ResponseWriter, r *http.Request) {
	monitor, ok := createResource(h, w, r, "Monitor", h.monitors.Create)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventMonitorCreated, monitor)
}
