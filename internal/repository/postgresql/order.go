package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/order"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type orderRepository struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `o.id, o.client_id, o.quote_id, o.order_number, o.description, o.total_value,
	o.is_confirmed, o.is_cancelled, o.required_date, o.invoice_number, o.delivered_at, o.in_production,
	o.created_at, o.updated_at, c.name`

func scanOrder(row pgx.Row) (order.Order, error) {
	var o order.Order
	err := row.Scan(&o.ID, &o.ClientID, &o.QuoteID, &o.OrderNumber, &o.Description, &o.TotalValue,
		&o.IsConfirmed, &o.IsCancelled, &o.RequiredDate, &o.InvoiceNumber, &o.DeliveredAt, &o.InProduction,
		&o.CreatedAt, &o.UpdatedAt, &o.ClientName)
	return o, err
}

func (r *orderRepository) Create(ctx context.Context, o order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO orders (client_id, quote_id, order_number, description, total_value, required_date)
		VALUES ($1, $2, 'SO-' || to_char(nextval('order_number_seq'), 'FM00000'), $3, $4, $5)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query, o.ClientID, o.QuoteID, o.Description, o.TotalValue, o.RequiredDate).Scan(&id)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orderColumns + ` FROM orders o JOIN clients c ON o.client_id = c.id WHERE o.id = $1`

	o, err := scanOrder(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return o, nil
}

func (r *orderRepository) List(ctx context.Context, filter order.OrderFilter) ([]order.Order, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.ClientID != nil {
		where = append(where, fmt.Sprintf("o.client_id = $%d", argIdx))
		args = append(args, *filter.ClientID)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM orders o WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+orderColumns+` FROM orders o JOIN clients c ON o.client_id = c.id
		WHERE %s ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

func (r *orderRepository) Update(ctx context.Context, req order.UpdateOrderRequest) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.TotalValue != nil {
		setParts = append(setParts, fmt.Sprintf("total_value = $%d", argIdx))
		args = append(args, *req.TotalValue)
		argIdx++
	}
	if req.RequiredDate != nil {
		setParts = append(setParts, fmt.Sprintf("required_date = $%d", argIdx))
		args = append(args, *req.RequiredDate)
		argIdx++
	}
	if req.InvoiceNumber != nil {
		setParts = append(setParts, fmt.Sprintf("invoice_number = $%d", argIdx))
		args = append(args, *req.InvoiceNumber)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id = $1 RETURNING id`, strings.Join(setParts, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	return r.GetByID(ctx, req.ID)
}

func (r *orderRepository) Confirm(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "is_confirmed = true")
}

func (r *orderRepository) Cancel(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "is_cancelled = true, in_production = false")
}

func (r *orderRepository) SetInProduction(ctx context.Context, id string, inProduction bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE orders SET in_production = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, inProduction).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order production flag: %w", err)
	}

	return nil
}

func (r *orderRepository) MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE orders SET delivered_at = $2, in_production = false, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, deliveredAt).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("failed to mark order delivered: %w", err)
	}

	return nil
}

func (r *orderRepository) setFlag(ctx context.Context, id string, set string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`UPDATE orders SET %s, updated_at = NOW() WHERE id = $1 RETURNING id`, set)

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}
