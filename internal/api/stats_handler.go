package api

import (
	"context"
	"net/http"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/repo"
)

// DashboardStats возвращает сводку для главной страницы.
// GET /api/stats/dashboard
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.dbContext(r)
	defer cancel()

	stats, err := h.collectStats(ctx)
	if err != nil {
		h.logger.Error("collect dashboard stats", "error", err)
		OK(w, domain.FallbackStats())
		return
	}
	OK(w, stats)
}

// collectStats считает строки. Первая же ошибка прерывает сбор целиком.
func (h *Handler) collectStats(ctx context.Context) (domain.DashboardStats, error) {
	stats := domain.DashboardStats{
		Health:         domain.HealthScore,
		RecentActivity: []any{},
	}

	counts := []struct {
		table repo.Table
		dst   *int64
	}{
		{repo.TableClients, &stats.Clients},
		{repo.TableProjects, &stats.Projects},
		{repo.TableServers, &stats.Servers},
	}
	for _, c := range counts {
		n, err := h.counter.Count(ctx, c.table)
		if err != nil {
			return domain.DashboardStats{}, err
		}
		*c.dst = n
	}

	return stats, nil
}
