package api

import (
	"errors"
	"net/http"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/repo"
)

// ListServers возвращает все серверы.
// GET /api/servers
func (h *Handler) ListServers(w http.ResponseWriter, r *http.Request) {
	listResource(h, w, r, "servers", h.servers.List)
}

// GetServer возвращает сервер по ID.
// GET /api/servers/{id}
func (h *Handler) GetServer(w http.ResponseWriter, r *http.Request) {
	getResource(h, w, r, "Server", h.servers.GetByID)
}

// CreateServer создаёт сервер. Новый сервер всегда в статусе stopped.
// POST /api/servers
func (h *Handler) CreateServer(w http.ResponseWriter, r *http.Request) {
	server, ok := createResource(h, w, r, "Server", h.servers.Create)
	if !ok {
		return
	}
	h.publish(r.Context(), mq.EventServerCreated, server)
}

// ServerAction переводит сервер в новый статус.
// POST /api/servers/{id}/action?action=start|stop|reboot
//
// Неизвестное действие отклоняется с 422 до поиска сервера: запрос с
// произвольной строкой не отвечает 200 с прежним статусом.
func (h *Handler) ServerAction(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("action")
	if raw == "" {
		ValidationFailed(w, []ValidationIssue{{
			Loc:  []string{"query", "action"},
			Msg:  "Field required",
			Type: "missing",
		}})
		return
	}

	action, ok := domain.ParseServerAction(raw)
	if !ok {
		ValidationFailed(w, []ValidationIssue{{
			Loc:  []string{"query", "action"},
			Msg:  "Input should be 'start', 'stop' or 'reboot'",
			Type: "enum",
		}})
		return
	}

	id, ok := parseID(w, r, "Server")
	if !ok {
		return
	}

	ctx, cancel := h.dbContext(r)
	defer cancel()

	if _, err := h.servers.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			NotFound(w, "Server not found")
			return
		}
		BadRequest(w, err.Error())
		return
	}

	server, err := h.servers.UpdateStatus(ctx, id, action.TargetStatus())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			BadRequest(w, "Action failed")
			return
		}
		h.logger.Error("server action failed", "server_id", id, "action", action, "error", err)
		BadRequest(w, err.Error())
		return
	}

	h.logger.Info("server action applied", "server_id", id, "action", action, "status", server.Status)
	OK(w, server)

	h.publish(r.Context(), mq.EventServerAction, mq.ServerActionPayload{
		ServerID: server.ID,
		Action:   string(action),
		Status:   string(server.Status),
	})
}
