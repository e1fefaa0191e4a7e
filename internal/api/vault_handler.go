package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
)

// ListSecrets возвращает все секреты.
// GET /api/vault
func (h *Handler) ListSecrets(w http.ResponseWriter, r *http.Request) {
	listResource(h, w, r, "vault", h.secrets.List)
}

// GetSecret возвращает секрет по ID.
// GET /api/vault/{id}
func (h *Handler) GetSecret(w http.ResponseWriter, r *http.Request) {
	getResource(h, w, r, "Secret", h.secrets.GetByID)
}

// CreateSecret создаёт секрет.
// POST /api/vault
func (h *Handler) CreateSecret(w http.ResponseWriter, r *http.Request) {
	secret, ok := createResource(h, w, r, "Secret", h.secrets.Create)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventSecretCreated, secretPayload(secret))
}

// UpdateSecret ротирует значение секрета.
// PUT /api/vault/{id}
func (h *Handler) UpdateSecret(w http.ResponseWriter, r *http.Request) {
	update := func(ctx context.Context, id uuid.UUID, in domain.SecretUpdate) (*domain.Secret, error) {
		return h.secrets.UpdateValue(ctx, id, in.Value)
	}

	secret, ok := updateResource(h, w, r, "Secret", update)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventSecretUpdated, secretPayload(secret))
}

func secretPayload(s *domain.Secret) mq.SecretPayload {
	return mq.SecretPayload{
		SecretID:    s.ID,
		Key:         s.Key,
		Environment: s.Environment,
	}
}
