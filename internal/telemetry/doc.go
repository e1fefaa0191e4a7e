// Package telemetry обеспечивает наблюдаемость сервиса.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики HTTP слоя
//
// Метрики экспортируются на /metrics endpoint.
package telemetry
