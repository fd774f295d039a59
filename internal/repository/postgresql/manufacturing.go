package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/manufacturing"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type moRepository struct {
	db *database.DB
}

func NewMORepository(db *database.DB) manufacturing.MORepository {
	return &moRepository{db: db}
}

const moColumns = `m.id, m.order_id, m.mo_number, m.product_name, m.quantity, m.status,
	m.scheduled_date, m.started_at, m.completed_at, m.notes, m.created_at, m.updated_at,
	o.order_number, c.name`

const moJoins = `FROM manufacturing_orders m
	JOIN orders o ON m.order_id = o.id
	JOIN clients c ON o.client_id = c.id`

func scanMO(row pgx.Row) (manufacturing.ManufacturingOrder, error) {
	var m manufacturing.ManufacturingOrder
	err := row.Scan(&m.ID, &m.OrderID, &m.MONumber, &m.ProductName, &m.Quantity, &m.Status,
		&m.ScheduledDate, &m.StartedAt, &m.CompletedAt, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
		&m.OrderNumber, &m.ClientName)
	return m, err
}

func (r *moRepository) Create(ctx context.Context, mo manufacturing.ManufacturingOrder) (manufacturing.ManufacturingOrder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO manufacturing_orders (order_id, mo_number, product_name, quantity, status, notes)
		VALUES ($1, 'MO-' || to_char(nextval('mo_number_seq'), 'FM00000'), $2, $3, $4, $5)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query, mo.OrderID, mo.ProductName, mo.Quantity, mo.Status, mo.Notes).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_manufacturing_orders_order_id") {
			return manufacturing.ManufacturingOrder{}, manufacturing.ErrMOAlreadyExists
		}
		return manufacturing.ManufacturingOrder{}, fmt.Errorf("failed to create manufacturing order: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *moRepository) GetByID(ctx context.Context, id string) (manufacturing.ManufacturingOrder, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + moColumns + ` ` + moJoins + ` WHERE m.id = $1`

	m, err := scanMO(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return manufacturing.ManufacturingOrder{}, manufacturing.ErrMONotFound
		}
		return manufacturing.ManufacturingOrder{}, fmt.Errorf("failed to get manufacturing order: %w", err)
	}

	return m, nil
}

func (r *moRepository) GetByOrderID(ctx context.Context, orderID string) (manufacturing.ManufacturingOrder, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + moColumns + ` ` + moJoins + ` WHERE m.order_id = $1`

	m, err := scanMO(q.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return manufacturing.ManufacturingOrder{}, manufacturing.ErrMONotFound
		}
		return manufacturing.ManufacturingOrder{}, fmt.Errorf("failed to get manufacturing order by order: %w", err)
	}

	return m, nil
}

func (r *moRepository) List(ctx context.Context, filter manufacturing.MOFilter) ([]manufacturing.ManufacturingOrder, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("m.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.DateFrom != nil {
		where = append(where, fmt.Sprintf("m.scheduled_date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		where = append(where, fmt.Sprintf("m.scheduled_date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM manufacturing_orders m WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count manufacturing orders: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+moColumns+` `+moJoins+`
		WHERE %s ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list manufacturing orders: %w", err)
	}
	defer rows.Close()

	var mos []manufacturing.ManufacturingOrder
	for rows.Next() {
		m, err := scanMO(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan manufacturing order: %w", err)
		}
		mos = append(mos, m)
	}

	return mos, total, nil
}

func (r *moRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]manufacturing.ManufacturingOrder, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + moColumns + ` ` + moJoins + `
		WHERE m.scheduled_date BETWEEN $1 AND $2
		ORDER BY m.scheduled_date, m.mo_number`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar orders: %w", err)
	}
	defer rows.Close()

	var mos []manufacturing.ManufacturingOrder
	for rows.Next() {
		m, err := scanMO(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan manufacturing order: %w", err)
		}
		mos = append(mos, m)
	}

	return mos, nil
}

func (r *moRepository) SetSchedule(ctx context.Context, id string, scheduledDate *time.Time, status manufacturing.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE manufacturing_orders SET scheduled_date = $2, status = $3, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, scheduledDate, status).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return manufacturing.ErrMONotFound
		}
		return fmt.Errorf("failed to schedule manufacturing order: %w", err)
	}

	return nil
}

func (r *moRepository) SetStatus(ctx context.Context, id string, status manufacturing.Status, startedAt, completedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE manufacturing_orders
		SET status = $2,
			started_at = COALESCE($3, started_at),
			completed_at = COALESCE($4, completed_at),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status, startedAt, completedAt).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return manufacturing.ErrMONotFound
		}
		return fmt.Errorf("failed to update manufacturing order status: %w", err)
	}

	return nil
}
