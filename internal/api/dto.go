package api

// MessageResponse — ответ корневого маршрута.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse — ответ health-check.
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// GenerateRequest — запрос на генерацию кода.
// Prompt указателем: пустая строка допустима, отсутствие поля нет.
type GenerateRequest struct {
	Prompt  *string `json:"prompt" validate:"required"`
	Context string  `json:"context"`
}
