package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/repo"
)

// Общие обработчики для ресурсов с одинаковой формой list/get/create.

// listResource отдаёт все строки ресурса.
// Ошибка хранилища не доходит до клиента: отдаём пустой список.
func listResource[T any](h *Handler, w http.ResponseWriter, r *http.Request, resource string, list func(context.Context) ([]T, error)) {
	ctx, cancel := h.dbContext(r)
	defer cancel()

	items, err := list(ctx)
	if err != nil {
		h.listFailSoft(w, resource, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	OK(w, items)
}

func (h *Handler) listFailSoft(w http.ResponseWriter, resource string, err error) {
	h.logger.Error("list failed, returning empty result", "resource", resource, "error", err)
	h.metrics.ListFailSoft(resource)
	OK(w, []struct{}{})
}

// getResource отдаёт одну строку по id из пути.
// entity — имя сущности для сообщения "<Entity> not found".
func getResource[T any](h *Handler, w http.ResponseWriter, r *http.Request, entity string, get func(context.Context, uuid.UUID) (*T, error)) {
	id, ok := parseID(w, r, entity)
	if !ok {
		return
	}

	ctx, cancel := h.dbContext(r)
	defer cancel()

	item, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			NotFound(w, entity+" not found")
			return
		}
		BadRequest(w, err.Error())
		return
	}
	OK(w, item)
}

// createResource декодирует тело C, создаёт строку и отдаёт её.
// Возвращает созданную строку для публикации события.
func createResource[C any, T any](h *Handler, w http.ResponseWriter, r *http.Request, entity string, create func(context.Context, C) (*T, error)) (*T, bool) {
	in, ok := decodeBody[C](h, w, r)
	if !ok {
		return nil, false
	}

	ctx, cancel := h.dbContext(r)
	defer cancel()

	item, err := create(ctx, in)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			BadRequest(w, "Could not create "+lower(entity))
			return nil, false
		}
		h.logger.Error("create failed", "entity", entity, "error", err)
		BadRequest(w, err.Error())
		return nil, false
	}

	OK(w, item)
	return item, true
}

// updateResource декодирует тело U и обновляет строку по id из пути.
func updateResource[U any, T any](h *Handler, w http.ResponseWriter, r *http.Request, entity string, update func(context.Context, uuid.UUID, U) (*T, error)) (*T, bool) {
	id, ok := parseID(w, r, entity)
	if !ok {
		return nil, false
	}

	in, ok := decodeBody[U](h, w, r)
	if !ok {
		return nil, false
	}

	ctx, cancel := h.dbContext(r)
	defer cancel()

	item, err := update(ctx, id, in)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			NotFound(w, entity+" not found")
			return nil, false
		}
		h.logger.Error("update failed", "entity", entity, "error", err)
		BadRequest(w, err.Error())
		return nil, false
	}

	OK(w, item)
	return item, true
}

// parseID извлекает uuid из {id}. Невалидный id не найдётся ни в одной таблице,
// поэтому отвечаем 404.
func parseID(w http.ResponseWriter, r *http.Request, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		NotFound(w, entity+" not found")
		return uuid.Nil, false
	}
	return id, true
}

func lower(entity string) string {
	if entity == "" {
		return entity
	}
	b := []byte(entity)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
