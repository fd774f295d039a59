package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/delivery"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deliveryRepository struct {
	db *database.DB
}

func NewDeliveryRepository(db *database.DB) delivery.DeliveryRepository {
	return &deliveryRepository{db: db}
}

const deliveryColumns = `d.id, d.order_id, d.delivery_number, d.driver_id, d.vehicle_id,
	d.delivery_date, d.address, d.status, d.delivered_at, d.notes, d.created_at, d.updated_at,
	o.order_number, c.name, dr.full_name, v.registration`

const deliveryJoins = `FROM deliveries d
	JOIN orders o ON d.order_id = o.id
	JOIN clients c ON o.client_id = c.id
	JOIN drivers dr ON d.driver_id = dr.id
	JOIN vehicles v ON d.vehicle_id = v.id`

func scanDelivery(row pgx.Row) (delivery.Delivery, error) {
	var d delivery.Delivery
	err := row.Scan(&d.ID, &d.OrderID, &d.DeliveryNumber, &d.DriverID, &d.VehicleID,
		&d.DeliveryDate, &d.Address, &d.Status, &d.DeliveredAt, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
		&d.OrderNumber, &d.ClientName, &d.DriverName, &d.VehicleRego)
	return d, err
}

func (r *deliveryRepository) Create(ctx context.Context, d delivery.Delivery) (delivery.Delivery, error) {
	q := GetQuerier(ctx, r.db)

	// nextval inside the insert keeps the delivery number assignment in
	// the same statement as the row, replacing the old stored procedure.
	query := `
		INSERT INTO deliveries (order_id, delivery_number, driver_id, vehicle_id, delivery_date, address, status, notes)
		VALUES ($1, nextval('delivery_number_seq'), $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query, d.OrderID, d.DriverID, d.VehicleID, d.DeliveryDate, d.Address, d.Status, d.Notes).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_deliveries_order_id") {
			return delivery.Delivery{}, delivery.ErrOrderHasDelivery
		}
		return delivery.Delivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *deliveryRepository) GetByID(ctx context.Context, id string) (delivery.Delivery, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deliveryColumns + ` ` + deliveryJoins + ` WHERE d.id = $1`

	d, err := scanDelivery(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delivery.Delivery{}, delivery.ErrDeliveryNotFound
		}
		return delivery.Delivery{}, fmt.Errorf("failed to get delivery: %w", err)
	}

	return d, nil
}

func (r *deliveryRepository) List(ctx context.Context, filter delivery.DeliveryFilter) ([]delivery.Delivery, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("d.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.DriverID != nil {
		where = append(where, fmt.Sprintf("d.driver_id = $%d", argIdx))
		args = append(args, *filter.DriverID)
		argIdx++
	}
	if filter.DateFrom != nil {
		where = append(where, fmt.Sprintf("d.delivery_date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		where = append(where, fmt.Sprintf("d.delivery_date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM deliveries d WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count deliveries: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+deliveryColumns+` `+deliveryJoins+`
		WHERE %s ORDER BY d.delivery_date, d.delivery_number LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []delivery.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, total, nil
}

func (r *deliveryRepository) Update(ctx context.Context, req delivery.UpdateDeliveryRequest) (delivery.Delivery, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.DriverID != nil {
		setParts = append(setParts, fmt.Sprintf("driver_id = $%d", argIdx))
		args = append(args, *req.DriverID)
		argIdx++
	}
	if req.VehicleID != nil {
		setParts = append(setParts, fmt.Sprintf("vehicle_id = $%d", argIdx))
		args = append(args, *req.VehicleID)
		argIdx++
	}
	if req.DeliveryDate != nil {
		setParts = append(setParts, fmt.Sprintf("delivery_date = $%d", argIdx))
		args = append(args, *req.DeliveryDate)
		argIdx++
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE deliveries SET %s WHERE id = $1 RETURNING id`, strings.Join(setParts, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delivery.Delivery{}, delivery.ErrDeliveryNotFound
		}
		return delivery.Delivery{}, fmt.Errorf("failed to update delivery: %w", err)
	}

	return r.GetByID(ctx, req.ID)
}

func (r *deliveryRepository) SetStatus(ctx context.Context, id string, status delivery.Status, deliveredAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE deliveries SET status = $2, delivered_at = COALESCE($3, delivered_at), updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status, deliveredAt).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("failed to update delivery status: %w", err)
	}

	return nil
}

func (r *deliveryRepository) ListDrivers(ctx context.Context, activeOnly bool) ([]delivery.Driver, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, full_name, phone, is_active, created_at, updated_at FROM drivers`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []delivery.Driver
	for rows.Next() {
		var d delivery.Driver
		if err := rows.Scan(&d.ID, &d.FullName, &d.Phone, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

func (r *deliveryRepository) ListVehicles(ctx context.Context, activeOnly bool) ([]delivery.Vehicle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, registration, description, is_active, created_at, updated_at FROM vehicles`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY registration`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []delivery.Vehicle
	for rows.Next() {
		var v delivery.Vehicle
		if err := rows.Scan(&v.ID, &v.Registration, &v.Description, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
