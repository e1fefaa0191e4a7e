package domain

import (
	"time"

	"github.com/google/uuid"
)

// Secret — секрет окружения (API ключи, пароли).
type Secret struct {
	ID          uuid.UUID  `json:"id"`
	Key         string     `json:"key"`
	Value       string     `json:"value"`
	Environment string     `json:"environment"`
	LastUpdated *time.Time `json:"lastUpdated"`
}

// SecretCreate — поля секрета, которые задаёт вызывающий.
type SecretCreate struct {
	Key         string `json:"key" validate:"present"`
	Value       string `json:"value" validate:"present"`
	Environment string `json:"environment" validate:"present"`
}

// SecretUpdate — ротация значения секрета.
type SecretUpdate struct {
	Value string `json:"value" validate:"present"`
}
