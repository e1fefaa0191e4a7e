package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
)

// ListSettings возвращает все настройки.
// GET /api/settings
func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	listResource(h, w, r, "settings", h.settings.List)
}

// GetSetting возвращает настройку по ID.
// GET /api/settings/{id}
func (h *Handler) GetSetting(w http.ResponseWriter, r *http.Request) {
	getResource(h, w, r, "Setting", h.settings.GetByID)
}

// CreateSetting создаёт настройку.
// POST /api/settings
func (h *Handler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	setting, ok := createResource(h, w, r, "Setting", h.settings.Create)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventSettingCreated, setting)
}

// UpdateSetting меняет значение настройки.
// PUT /api/settings/{id}
func (h *Handler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	update := func(ctx context.Context, id uuid.UUID, in domain.SettingUpdate) (*domain.Setting, error) {
		return h.settings.UpdateValue(ctx, id, in.Value)
	}

	setting, ok := updateResource(h, w, r, "Setting", update)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventSettingUpdated, setting)
}
