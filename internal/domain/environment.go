package domain

import (
	"time"

	"github.com/google/uuid"
)

// EnvironmentResources — выделенные окружению ресурсы.
// Значения хранятся строками как есть ("2 vCPU", "4Gi").
type EnvironmentResources struct {
	CPU     string `json:"cpu" validate:"present"`
	Memory  string `json:"memory" validate:"present"`
	Storage string `json:"storage" validate:"present"`
}

// Environment — окружение проекта (dev, staging, production).
type Environment struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	ProjectID      uuid.UUID            `json:"projectId"`
	Status         string               `json:"status"`
	Health         string               `json:"health"`
	URL            string               `json:"url"`
	LastDeployment *time.Time           `json:"lastDeployment"`
	Version        string               `json:"version"`
	Resources      EnvironmentResources `json:"resources"`
	Services       []string             `json:"services"`
	Uptime         float64              `json:"uptime"`

	// Servers заполняется join-раскрытием по servers."environmentId".
	Servers []Server `json:"servers"`
}

// EnvironmentCreate — поля окружения, которые задаёт вызывающий.
type EnvironmentCreate struct {
	Name      string               `json:"name" validate:"present"`
	ProjectID uuid.UUID            `json:"projectId" validate:"present"`
	URL       string               `json:"url" validate:"present"`
	Version   string               `json:"version" validate:"present"`
	Resources EnvironmentResources `json:"resources" validate:"present"`
}
