package domain

import "github.com/google/uuid"

// Setting — глобальная настройка дашборда, хранится в БД.
type Setting struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
}

// SettingCreate — поля настройки, которые задаёт вызывающий.
type SettingCreate struct {
	Key         string `json:"key" validate:"present"`
	Value       string `json:"value" validate:"present"`
	Description string `json:"description"`
}

// SettingUpdate — обновление значения настройки.
type SettingUpdate struct {
	Value string `json:"value" validate:"present"`
}
