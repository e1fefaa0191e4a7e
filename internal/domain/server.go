package domain

import (
	"github.com/google/uuid"
)

// ServerStatus — статус сервера.
//
// Переходы выполняются только через action endpoint:
//
//	start  → running
//	stop   → stopped
//	reboot → rebooting
//
// Автоматического возврата из rebooting в running нет.
type ServerStatus string

const (
	ServerStatusRunning   ServerStatus = "running"
	ServerStatusStopped   ServerStatus = "stopped"
	ServerStatusRebooting ServerStatus = "rebooting"
)

// ServerAction — действие над сервером.
type ServerAction string

const (
	ServerActionStart  ServerAction = "start"
	ServerActionStop   ServerAction = "stop"
	ServerActionReboot ServerAction = "reboot"
)

// ParseServerAction парсит действие. ok=false для неизвестных значений.
func ParseServerAction(s string) (ServerAction, bool) {
	switch a := ServerAction(s); a {
	case ServerActionStart, ServerActionStop, ServerActionReboot:
		return a, true
	default:
		return "", false
	}
}

// TargetStatus возвращает статус, в который переводит действие.
func (a ServerAction) TargetStatus() ServerStatus {
	switch a {
	case ServerActionStart:
		return ServerStatusRunning
	case ServerActionStop:
		return ServerStatusStopped
	case ServerActionReboot:
		// TODO: вернуть сервер в running после перезагрузки, когда появится
		// реальный провайдер, сообщающий о завершении reboot.
		return ServerStatusRebooting
	default:
		return ""
	}
}

// Server — виртуальная машина или управляемый сервис (EC2, RDS, S3...).
type Server struct {
	ID     uuid.UUID    `json:"id"`
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	Status ServerStatus `json:"status"`
	CPU    string       `json:"cpu"`
	Memory string       `json:"memory"`
	Region string       `json:"region"`

	PrivateIP     string     `json:"privateIp"`
	EnvironmentID *uuid.UUID `json:"environmentId,omitempty"`
}

// ServerCreate — поля сервера, которые задаёт вызывающий.
type ServerCreate struct {
	Name          string     `json:"name" validate:"present"`
	Type          string     `json:"type" validate:"present"`
	Region        string     `json:"region" validate:"present"`
	PrivateIP     string     `json:"privateIp" validate:"present"`
	EnvironmentID *uuid.UUID `json:"environmentId,omitempty"`
}
