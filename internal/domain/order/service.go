package order

import "context"

type OrderService interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderResponse, error)
	GetOrder(ctx context.Context, id string) (OrderResponse, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]OrderResponse, int64, error)
	UpdateOrder(ctx context.Context, req UpdateOrderRequest) (OrderResponse, error)
	ConfirmOrder(ctx context.Context, id string) (OrderResponse, error)
	CancelOrder(ctx context.Context, id string) (OrderResponse, error)
}
