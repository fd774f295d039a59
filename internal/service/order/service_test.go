package order

import (
	"context"
	"testing"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/client"
	"github.com/boxline/boxline-backend-go/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients []client.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, c client.Client) (client.Client, error) {
	f.clients = append(f.clients, c)
	return c, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id string) (client.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return client.Client{}, client.ErrClientNotFound
}

func (f *fakeClientRepo) List(ctx context.Context, filter client.ClientFilter) ([]client.Client, int64, error) {
	return f.clients, int64(len(f.clients)), nil
}

func (f *fakeClientRepo) Update(ctx context.Context, req client.UpdateClientRequest) (client.Client, error) {
	return client.Client{}, client.ErrClientNotFound
}

func (f *fakeClientRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type fakeOrderRepo struct {
	orders []order.Order
	nextID int
}

func (f *fakeOrderRepo) Create(ctx context.Context, o order.Order) (order.Order, error) {
	f.nextID++
	o.ID = "order-" + string(rune('0'+f.nextID))
	o.OrderNumber = "ORD-000" + string(rune('0'+f.nextID))
	f.orders = append(f.orders, o)
	return o, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (order.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return order.Order{}, order.ErrOrderNotFound
}

func (f *fakeOrderRepo) List(ctx context.Context, filter order.OrderFilter) ([]order.Order, int64, error) {
	var matched []order.Order
	for _, o := range f.orders {
		if filter.ClientID != nil && o.ClientID != *filter.ClientID {
			continue
		}
		matched = append(matched, o)
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, req order.UpdateOrderRequest) (order.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == req.ID {
			return f.orders[i], nil
		}
	}
	return order.Order{}, order.ErrOrderNotFound
}

func (f *fakeOrderRepo) Confirm(ctx context.Context, id string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].IsConfirmed = true
			return nil
		}
	}
	return order.ErrOrderNotFound
}

func (f *fakeOrderRepo) Cancel(ctx context.Context, id string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].IsCancelled = true
			return nil
		}
	}
	return order.ErrOrderNotFound
}

func (f *fakeOrderRepo) SetInProduction(ctx context.Context, id string, inProduction bool) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].InProduction = inProduction
			return nil
		}
	}
	return order.ErrOrderNotFound
}

func (f *fakeOrderRepo) MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].DeliveredAt = &deliveredAt
			return nil
		}
	}
	return order.ErrOrderNotFound
}

func activeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: []client.Client{
		{ID: "c1", Name: "Acme Cartons", IsActive: true},
		{ID: "c2", Name: "Dormant Co", IsActive: false},
	}}
}

func TestCreateOrderRejectsInactiveClient(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, activeClientRepo())

	_, err := svc.CreateOrder(context.Background(), order.CreateOrderRequest{
		ClientID:    "c2",
		Description: "500 shipper cartons",
		TotalValue:  decimal.NewFromInt(1200),
	})
	assert.ErrorIs(t, err, client.ErrClientNotFound)
}

func TestCreateOrderStartsAsNew(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, activeClientRepo())

	resp, err := svc.CreateOrder(context.Background(), order.CreateOrderRequest{
		ClientID:    "c1",
		Description: "500 shipper cartons",
		TotalValue:  decimal.NewFromInt(1200),
	})
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusNew), resp.Status)
}

func TestConfirmOrderGuards(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo, activeClientRepo())

	resp, err := svc.CreateOrder(context.Background(), order.CreateOrderRequest{
		ClientID:    "c1",
		Description: "500 shipper cartons",
		TotalValue:  decimal.NewFromInt(1200),
	})
	require.NoError(t, err)

	_, err = svc.ConfirmOrder(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = svc.ConfirmOrder(context.Background(), resp.ID)
	assert.ErrorIs(t, err, order.ErrOrderAlreadyConfirmed)

	_, err = svc.CancelOrder(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = svc.ConfirmOrder(context.Background(), resp.ID)
	assert.ErrorIs(t, err, order.ErrOrderCancelled)

	_, err = svc.CancelOrder(context.Background(), resp.ID)
	assert.ErrorIs(t, err, order.ErrOrderCancelled)
}

func TestConfirmedOrderWithoutRequiredDateIsIncomplete(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo, activeClientRepo())

	resp, err := svc.CreateOrder(context.Background(), order.CreateOrderRequest{
		ClientID:    "c1",
		Description: "500 shipper cartons",
		TotalValue:  decimal.NewFromInt(1200),
	})
	require.NoError(t, err)

	confirmed, err := svc.ConfirmOrder(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusIncomplete), confirmed.Status)
}

func TestListOrdersFiltersByDerivedStatus(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo, activeClientRepo())

	date := "2025-09-15"
	for i := 0; i < 3; i++ {
		resp, err := svc.CreateOrder(context.Background(), order.CreateOrderRequest{
			ClientID:     "c1",
			Description:  "corrugated boxes",
			TotalValue:   decimal.NewFromInt(800),
			RequiredDate: &date,
		})
		require.NoError(t, err)
		if i < 2 {
			_, err = svc.ConfirmOrder(context.Background(), resp.ID)
			require.NoError(t, err)
		}
	}

	status := "confirmed"
	responses, total, err := svc.ListOrders(context.Background(), order.OrderFilter{Status: &status})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, responses, 2)
	for _, r := range responses {
		assert.Equal(t, "confirmed", r.Status)
	}

	status = "new"
	responses, total, err = svc.ListOrders(context.Background(), order.OrderFilter{Status: &status})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, responses, 1)
}

func TestListOrdersStatusFilterPagination(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo, activeClientRepo())

	for i := 0; i < 5; i++ {
		_, err := svc.CreateOrder(context.Background(), order.CreateOrderRequest{
			ClientID:    "c1",
			Description: "corrugated boxes",
			TotalValue:  decimal.NewFromInt(800),
		})
		require.NoError(t, err)
	}

	status := "new"
	responses, total, err := svc.ListOrders(context.Background(), order.OrderFilter{Status: &status, Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, responses, 2)

	responses, total, err = svc.ListOrders(context.Background(), order.OrderFilter{Status: &status, Page: 4, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Empty(t, responses)
}
