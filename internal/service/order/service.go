package order

import (
	"context"
	"fmt"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/client"
	"github.com/boxline/boxline-backend-go/internal/domain/order"
)

type OrderServiceImpl struct {
	orderRepo  order.OrderRepository
	clientRepo client.ClientRepository
}

func NewOrderService(orderRepo order.OrderRepository, clientRepo client.ClientRepository) order.OrderService {
	return &OrderServiceImpl{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
	}
}

func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req order.CreateOrderRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	c, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return order.OrderResponse{}, err
	}
	if !c.IsActive {
		return order.OrderResponse{}, client.ErrClientNotFound
	}

	o := order.Order{
		ClientID:    req.ClientID,
		QuoteID:     req.QuoteID,
		Description: req.Description,
		TotalValue:  req.TotalValue,
	}
	if req.RequiredDate != nil {
		d, _ := time.Parse("2006-01-02", *req.RequiredDate)
		o.RequiredDate = &d
	}

	created, err := s.orderRepo.Create(ctx, o)
	if err != nil {
		return order.OrderResponse{}, err
	}

	return toResponse(created), nil
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (order.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return order.OrderResponse{}, err
	}
	return toResponse(o), nil
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, filter order.OrderFilter) ([]order.OrderResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	// The display status is derived, not stored, so a status filter
	// cannot be pushed into SQL. Fetch the full window and page the
	// filtered rows here.
	if filter.Status != nil {
		return s.listByStatus(ctx, filter)
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	responses := make([]order.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toResponse(o))
	}

	return responses, total, nil
}

func (s *OrderServiceImpl) listByStatus(ctx context.Context, filter order.OrderFilter) ([]order.OrderResponse, int64, error) {
	want := order.DisplayStatus(*filter.Status)

	all := order.OrderFilter{ClientID: filter.ClientID, Page: 1, Limit: 1000}
	orders, _, err := s.orderRepo.List(ctx, all)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	var matched []order.OrderResponse
	for _, o := range orders {
		if order.DeriveStatus(o) == want {
			matched = append(matched, toResponse(o))
		}
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []order.OrderResponse{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func (s *OrderServiceImpl) UpdateOrder(ctx context.Context, req order.UpdateOrderRequest) (order.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, req.ID)
	if err != nil {
		return order.OrderResponse{}, err
	}
	if o.IsCancelled {
		return order.OrderResponse{}, order.ErrOrderCancelled
	}

	updated, err := s.orderRepo.Update(ctx, req)
	if err != nil {
		return order.OrderResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *OrderServiceImpl) ConfirmOrder(ctx context.Context, id string) (order.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return order.OrderResponse{}, err
	}
	if o.IsCancelled {
		return order.OrderResponse{}, order.ErrOrderCancelled
	}
	if o.IsConfirmed {
		return order.OrderResponse{}, order.ErrOrderAlreadyConfirmed
	}

	if err := s.orderRepo.Confirm(ctx, id); err != nil {
		return order.OrderResponse{}, err
	}

	o.IsConfirmed = true
	return toResponse(o), nil
}

func (s *OrderServiceImpl) CancelOrder(ctx context.Context, id string) (order.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return order.OrderResponse{}, err
	}
	if o.IsCancelled {
		return order.OrderResponse{}, order.ErrOrderCancelled
	}

	if err := s.orderRepo.Cancel(ctx, id); err != nil {
		return order.OrderResponse{}, err
	}

	o.IsCancelled = true
	return toResponse(o), nil
}

func toResponse(o order.Order) order.OrderResponse {
	resp := order.OrderResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		QuoteID:       o.QuoteID,
		OrderNumber:   o.OrderNumber,
		Description:   o.Description,
		TotalValue:    o.TotalValue,
		Status:        string(order.DeriveStatus(o)),
		InvoiceNumber: o.InvoiceNumber,
	}
	if o.RequiredDate != nil {
		d := o.RequiredDate.Format("2006-01-02")
		resp.RequiredDate = &d
	}
	if o.DeliveredAt != nil {
		d := o.DeliveredAt.Format(time.RFC3339)
		resp.DeliveredAt = &d
	}
	return resp
}
