package domain

import (
	"time"

	"github.com/google/uuid"
)

// Monitor — uptime-монитор внешнего URL.
// Метрики (responseTime, uptime, incidents) пишет внешний проверяющий.
type Monitor struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	Status        string     `json:"status"`
	ResponseTime  float64    `json:"responseTime"`
	Uptime        float64    `json:"uptime"`
	LastCheck     *time.Time `json:"lastCheck"`
	Incidents     int        `json:"incidents"`
	DowntimeToday string     `json:"downtimeToday"`
}

// MonitorCreate — поля монитора, которые задаёт вызывающий.
type MonitorCreate struct {
	Name string `json:"name" validate:"present"`
	URL  string `json:"url" validate:"present"`
}
