package api

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse — тело ответа с ошибкой.
// Detail — строка или список ValidationIssue для 422.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ValidationIssue — одна ошибка валидации.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// JSON отправляет JSON ответ.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// OK отправляет данные со статусом 200.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Error отправляет ответ с ошибкой.
func Error(w http.ResponseWriter, status int, detail any) {
	JSON(w, status, ErrorResponse{Detail: detail})
}

// BadRequest отправляет ошибку 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound отправляет ошибку 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// ValidationFailed отправляет ошибку 422.
func ValidationFailed(w http.ResponseWriter, issues []ValidationIssue) {
	Error(w, http.StatusUnprocessableEntity, issues)
}

// InternalError отправляет ошибку 500. Детали остаются в логе.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal Server Error")
}
