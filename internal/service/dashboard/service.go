package dashboard

import (
	"context"
	"fmt"

	"github.com/boxline/boxline-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo}
}

func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (dashboard.Overview, error) {
	overview, err := s.dashboardRepo.GetOverview(ctx)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to load dashboard overview: %w", err)
	}
	return overview, nil
}
