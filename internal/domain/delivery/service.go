package delivery

import "context"

type DeliveryService interface {
	ScheduleDelivery(ctx context.Context, req ScheduleDeliveryRequest) (DeliveryResponse, error)
	GetDelivery(ctx context.Context, id string) (DeliveryResponse, error)
	ListDeliveries(ctx context.Context, filter DeliveryFilter) ([]DeliveryResponse, int64, error)
	UpdateDelivery(ctx context.Context, req UpdateDeliveryRequest) (DeliveryResponse, error)

	StartDelivery(ctx context.Context, id string) (DeliveryResponse, error)

	// MarkDelivered finalises the delivery and stamps the underlying
	// order as delivered.
	MarkDelivered(ctx context.Context, id string) (DeliveryResponse, error)

	CancelDelivery(ctx context.Context, id string) (DeliveryResponse, error)

	ListDrivers(ctx context.Context, activeOnly bool) ([]DriverResponse, error)
	ListVehicles(ctx context.Context, activeOnly bool) ([]VehicleResponse, error)
}
