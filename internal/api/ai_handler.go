package api

import (
	"net/http"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/assistant"
)

// GenerateCode возвращает шаблон инфраструктурного кода по запросу.
// POST /api/ai/generate
func (h *Handler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[GenerateRequest](h, w, r)
	if !ok {
		return
	}

	OK(w, assistant.Generate(*req.Prompt))
}
