package manufacturing

import (
	"context"
	"time"
)

type MORepository interface {
	Create(ctx context.Context, mo ManufacturingOrder) (ManufacturingOrder, error)
	GetByID(ctx context.Context, id string) (ManufacturingOrder, error)
	GetByOrderID(ctx context.Context, orderID string) (ManufacturingOrder, error)
	List(ctx context.Context, filter MOFilter) ([]ManufacturingOrder, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]ManufacturingOrder, error)
	SetSchedule(ctx context.Context, id string, scheduledDate *time.Time, status Status) error
	SetStatus(ctx context.Context, id string, status Status, startedAt, completedAt *time.Time) error
}
