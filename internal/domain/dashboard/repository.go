package dashboard

import "context"

type DashboardRepository interface {
	GetOverview(ctx context.Context) (Overview, error)
}
