package order

import (
	"context"
	"time"
)

type OrderRepository interface {
	Create(ctx context.Context, o Order) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	List(ctx context.Context, filter OrderFilter) ([]Order, int64, error)
	Update(ctx context.Context, req UpdateOrderRequest) (Order, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	SetInProduction(ctx context.Context, id string, inProduction bool) error
	MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error
}
