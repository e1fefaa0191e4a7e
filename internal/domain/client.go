package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client — клиент агентства, владелец проектов.
type Client struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`

	// ProjectCount и EnvironmentCount — агрегаты, которые ведёт хранилище.
	// При создании не передаются.
	ProjectCount     int `json:"projectCount"`
	EnvironmentCount int `json:"environmentCount"`

	Status       string     `json:"status"`
	LastActivity *time.Time `json:"lastActivity"`

	// Projects заполняется join-раскрытием по projects."clientId".
	Projects []Project `json:"projects"`
}

// ClientCreate — поля клиента, которые задаёт вызывающий.
type ClientCreate struct {
	Name        string `json:"name" validate:"present"`
	Description string `json:"description" validate:"present"`
	Status      string `json:"status"`
}

// DefaultClientStatus — статус нового клиента, если он не указан.
const DefaultClientStatus = "active"

// Normalize подставляет значения по умолчанию.
func (c *ClientCreate) Normalize() {
	if c.Status == "" {
		c.Status = DefaultClientStatus
	}
}
