package api

import (
	"net/http"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
)

// ListClients возвращает клиентов с проектами.
// GET /api/clients
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	listResource(h, w, r, "clients", h.clients.List)
}

// GetClient возвращает клиента по ID.
// GET /api/clients/{id}
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	getResource(h, w, r, "Client", h.clients.GetByID)
}

// CreateClient создаёт клиента.
// POST /api/clients
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	client, ok := createResource(h, w, r, "Client", h.clients.Create)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventClientCreated, client)
}
