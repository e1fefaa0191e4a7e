package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project — проект клиента.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ClientID    uuid.UUID `json:"clientId"`
	Description string    `json:"description"`
	Status      string    `json:"status"`

	// Progress — процент готовности, 0..100.
	Progress int `json:"progress"`

	// Environments заполняется join-раскрытием по environments."projectId".
	Environments []Environment `json:"environments"`

	Team           []string   `json:"team"`
	LastDeployment *time.Time `json:"lastDeployment"`
	Repository     string     `json:"repository"`
	Technology     []string   `json:"technology"`
	CreatedAt      *time.Time `json:"createdAt"`
}

// ProjectCreate — поля проекта, которые задаёт вызывающий.
type ProjectCreate struct {
	Name        string    `json:"name" validate:"present"`
	ClientID    uuid.UUID `json:"clientId" validate:"present"`
	Description string    `json:"description" validate:"present"`
	Repository  string    `json:"repository" validate:"present"`
	Technology  []string  `json:"technology"`
}

// Normalize подставляет значения по умолчанию.
func (p *ProjectCreate) Normalize() {
	if p.Technology == nil {
		p.Technology = []string{}
	}
}
