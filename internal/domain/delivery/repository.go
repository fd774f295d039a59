package delivery

import (
	"context"
	"time"
)

type DeliveryRepository interface {
	// Create assigns the next delivery number from the deliveries
	// sequence inside the same transaction as the insert.
	Create(ctx context.Context, d Delivery) (Delivery, error)
	GetByID(ctx context.Context, id string) (Delivery, error)
	List(ctx context.Context, filter DeliveryFilter) ([]Delivery, int64, error)
	Update(ctx context.Context, req UpdateDeliveryRequest) (Delivery, error)
	SetStatus(ctx context.Context, id string, status Status, deliveredAt *time.Time) error

	ListDrivers(ctx context.Context, activeOnly bool) ([]Driver, error)
	ListVehicles(ctx context.Context, activeOnly bool) ([]Vehicle, error)
}
