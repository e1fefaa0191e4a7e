package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics — Prometheus метрики API.
// Методы безопасно вызывать на nil.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	failSoft *prometheus.CounterVec
}

// NewMetrics регистрирует метрики в reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_api_http_requests_total",
			Help: "Total HTTP requests handled by dashboard_api",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_api_http_request_duration_seconds",
			Help:    "HTTP request latency of dashboard_api",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		failSoft: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_api_list_failsoft_total",
			Help: "List reads that returned an empty array because the datastore failed",
		}, []string{"resource"}),
	}
}

// ObserveRequest учитывает один обработанный запрос.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ListFailSoft учитывает замаскированную ошибку списка.
func (m *Metrics) ListFailSoft(resource string) {
	if m == nil {
		return
	}
	m.failSoft.WithLabelValues(resource).Inc()
}
