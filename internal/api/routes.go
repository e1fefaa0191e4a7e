package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
		Metrics(h.metrics),
	)

	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, chain(fn))
	}

	// collection регистрирует путь коллекции со слешем на конце и без.
	collection := func(method, path string, fn http.HandlerFunc) {
		handle(method+" "+path, fn)
		handle(method+" "+path+"/{$}", fn)
	}

	// Service
	handle("GET /{$}", h.Root)
	handle("GET /health", h.Health)
	handle("GET /api/health", h.Health)

	// Clients
	collection("GET", "/api/clients", h.ListClients)
	collection("POST", "/api/clients", h.CreateClient)
	handle("GET /api/clients/{id}", h.GetClient)

	// Projects
	collection("GET", "/api/projects", h.ListProjects)
	collection("POST", "/api/projects", h.CreateProject)
	handle("GET /api/projects/{id}", h.GetProject)

	// Environments
	collection("GET", "/api/environments", h.ListEnvironments)
	collection("POST", "/api/environments", h.CreateEnvironment)
	handle("GET /api/environments/{id}", h.GetEnvironment)

	// Servers
	collection("GET", "/api/servers", h.ListServers)
	collection("POST", "/api/servers", h.CreateServer)
	handle("GET /api/servers/{id}", h.GetServer)
	handle("POST /api/servers/{id}/action", h.ServerAction)

	// Monitors (фронтенд обращается и к /api/monitoring)
	for _, prefix := range []string{"/api/monitors", "/api/monitoring"} {
		collection("GET", prefix, h.ListMonitors)
		collection("POST", prefix, h.CreateMonitor)
		handle("GET "+prefix+"/{id}", h.GetMonitor)
	}

	// Settings
	collection("GET", "/api/settings", h.ListSettings)
	collection("POST", "/api/settings", h.CreateSetting)
	handle("GET /api/settings/{id}", h.GetSetting)
	handle("PUT /api/settings/{id}", h.UpdateSetting)

	// Vault
	collection("GET", "/api/vault", h.ListSecrets)
	collection("POST", "/api/vault", h.CreateSecret)
	handle("GET /api/vault/{id}", h.GetSecret)
	handle("PUT /api/vault/{id}", h.UpdateSecret)

	// Stats
	handle("GET /api/stats/dashboard", h.DashboardStats)

	// AI
	handle("POST /api/ai/generate", h.GenerateCode)
}
