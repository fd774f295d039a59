package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/delivery"
	"github.com/boxline/boxline-backend-go/internal/domain/order"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/boxline/boxline-backend-go/internal/repository/postgresql"
)

type DeliveryServiceImpl struct {
	db           *database.DB
	deliveryRepo delivery.DeliveryRepository
	orderRepo    order.OrderRepository
}

func NewDeliveryService(db *database.DB, deliveryRepo delivery.DeliveryRepository, orderRepo order.OrderRepository) delivery.DeliveryService {
	return &DeliveryServiceImpl{
		db:           db,
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
	}
}

func (s *DeliveryServiceImpl) ScheduleDelivery(ctx context.Context, req delivery.ScheduleDeliveryRequest) (delivery.DeliveryResponse, error) {
	if err := req.Validate(); err != nil {
		return delivery.DeliveryResponse{}, err
	}

	o, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}
	if o.IsCancelled {
		return delivery.DeliveryResponse{}, order.ErrOrderCancelled
	}
	if !o.IsConfirmed {
		return delivery.DeliveryResponse{}, order.ErrOrderNotConfirmed
	}

	d, _ := time.Parse("2006-01-02", req.DeliveryDate)

	created, err := s.deliveryRepo.Create(ctx, delivery.Delivery{
		OrderID:      req.OrderID,
		DriverID:     req.DriverID,
		VehicleID:    req.VehicleID,
		DeliveryDate: d,
		Address:      req.Address,
		Status:       delivery.StatusScheduled,
		Notes:        req.Notes,
	})
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	return toResponse(created), nil
}

func (s *DeliveryServiceImpl) GetDelivery(ctx context.Context, id string) (delivery.DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}
	return toResponse(d), nil
}

func (s *DeliveryServiceImpl) ListDeliveries(ctx context.Context, filter delivery.DeliveryFilter) ([]delivery.DeliveryResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	deliveries, total, err := s.deliveryRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deliveries: %w", err)
	}

	responses := make([]delivery.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		responses = append(responses, toResponse(d))
	}

	return responses, total, nil
}

func (s *DeliveryServiceImpl) UpdateDelivery(ctx context.Context, req delivery.UpdateDeliveryRequest) (delivery.DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}
	if d.Status == delivery.StatusDelivered || d.Status == delivery.StatusCancelled {
		return delivery.DeliveryResponse{}, delivery.ErrDeliveryFinalized
	}

	updated, err := s.deliveryRepo.Update(ctx, req)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *DeliveryServiceImpl) StartDelivery(ctx context.Context, id string) (delivery.DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}
	if d.Status != delivery.StatusScheduled {
		return delivery.DeliveryResponse{}, delivery.ErrDeliveryFinalized
	}

	if err := s.deliveryRepo.SetStatus(ctx, id, delivery.StatusInTransit, nil); err != nil {
		return delivery.DeliveryResponse{}, err
	}

	d.Status = delivery.StatusInTransit
	return toResponse(d), nil
}

// MarkDelivered finalises the delivery and stamps the order in the same
// transaction so the order's derived status flips with the delivery.
func (s *DeliveryServiceImpl) MarkDelivered(ctx context.Context, id string) (delivery.DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}
	if d.Status == delivery.StatusDelivered || d.Status == delivery.StatusCancelled {
		return delivery.DeliveryResponse{}, delivery.ErrDeliveryFinalized
	}

	now := time.Now()
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.deliveryRepo.SetStatus(txCtx, id, delivery.StatusDelivered, &now); err != nil {
			return err
		}
		if err := s.orderRepo.MarkDelivered(txCtx, d.OrderID, now); err != nil {
			// The order may have been cancelled after the delivery was
			// scheduled; the delivery still completes.
			if errors.Is(err, order.ErrOrderNotFound) {
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	d.Status = delivery.StatusDelivered
	d.DeliveredAt = &now
	return toResponse(d), nil
}

func (s *DeliveryServiceImpl) CancelDelivery(ctx context.Context, id string) (delivery.DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}
	if d.Status == delivery.StatusDelivered || d.Status == delivery.StatusCancelled {
		return delivery.DeliveryResponse{}, delivery.ErrDeliveryFinalized
	}

	if err := s.deliveryRepo.SetStatus(ctx, id, delivery.StatusCancelled, nil); err != nil {
		return delivery.DeliveryResponse{}, err
	}

	d.Status = delivery.StatusCancelled
	return toResponse(d), nil
}

func (s *DeliveryServiceImpl) ListDrivers(ctx context.Context, activeOnly bool) ([]delivery.DriverResponse, error) {
	drivers, err := s.deliveryRepo.ListDrivers(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	responses := make([]delivery.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		responses = append(responses, delivery.DriverResponse{
			ID:       d.ID,
			FullName: d.FullName,
			Phone:    d.Phone,
			IsActive: d.IsActive,
		})
	}

	return responses, nil
}

func (s *DeliveryServiceImpl) ListVehicles(ctx context.Context, activeOnly bool) ([]delivery.VehicleResponse, error) {
	vehicles, err := s.deliveryRepo.ListVehicles(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	responses := make([]delivery.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, delivery.VehicleResponse{
			ID:           v.ID,
			Registration: v.Registration,
			Description:  v.Description,
			IsActive:     v.IsActive,
		})
	}

	return responses, nil
}

func toResponse(d delivery.Delivery) delivery.DeliveryResponse {
	resp := delivery.DeliveryResponse{
		ID:             d.ID,
		OrderID:        d.OrderID,
		OrderNumber:    d.OrderNumber,
		ClientName:     d.ClientName,
		DeliveryNumber: d.DeliveryNumber,
		DriverID:       d.DriverID,
		DriverName:     d.DriverName,
		VehicleID:      d.VehicleID,
		VehicleRego:    d.VehicleRego,
		DeliveryDate:   d.DeliveryDate.Format("2006-01-02"),
		Address:        d.Address,
		Status:         string(d.Status),
		Notes:          d.Notes,
	}
	if d.DeliveredAt != nil {
		t := d.DeliveredAt.Format(time.RFC3339)
		resp.DeliveredAt = &t
	}
	return resp
}
