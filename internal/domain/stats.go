package domain

// HealthScore — оценка здоровья системы для дашборда.
// Пока константа: мониторинг в расчёт не входит.
const HealthScore = 98

// DashboardStats — сводка для главной страницы дашборда.
type DashboardStats struct {
	Clients        int64 `json:"clients"`
	Projects       int64 `json:"projects"`
	Servers        int64 `json:"servers"`
	Health         int   `json:"health"`
	RecentActivity []any `json:"recent_activity"`
}

// FallbackStats возвращает сводку, которую отдаём при любой ошибке хранилища.
func FallbackStats() DashboardStats {
	return DashboardStats{
		Health:         100,
		RecentActivity: []any{},
	}
}
