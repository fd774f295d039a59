package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/boxline/boxline-backend-go/internal/domain/dashboard"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetOverview(ctx context.Context) (dashboard.Overview, error) {
	q := GetQuerier(ctx, r.db)

	var o dashboard.Overview

	// Status buckets mirror the display-status precedence used on the
	// order list: cancelled, then delivered, then in production, then
	// confirmed split by completeness, then new.
	orderQuery := `
		SELECT
			COUNT(*) FILTER (WHERE NOT is_confirmed AND NOT is_cancelled AND delivered_at IS NULL AND NOT in_production),
			COUNT(*) FILTER (WHERE is_confirmed AND NOT is_cancelled AND delivered_at IS NULL AND NOT in_production
				AND (required_date IS NULL OR total_value <= 0)),
			COUNT(*) FILTER (WHERE is_confirmed AND NOT is_cancelled AND delivered_at IS NULL AND NOT in_production
				AND required_date IS NOT NULL AND total_value > 0),
			COUNT(*) FILTER (WHERE in_production AND NOT is_cancelled AND delivered_at IS NULL),
			COUNT(*) FILTER (WHERE delivered_at IS NOT NULL AND NOT is_cancelled),
			COUNT(*) FILTER (WHERE is_cancelled)
		FROM orders`

	err := q.QueryRow(ctx, orderQuery).Scan(
		&o.OrderCounts.New, &o.OrderCounts.Incomplete, &o.OrderCounts.Confirmed,
		&o.OrderCounts.InProduction, &o.OrderCounts.Delivered, &o.OrderCounts.Cancelled)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to count orders: %w", err)
	}

	opsQuery := `
		SELECT
			(SELECT COUNT(*) FROM manufacturing_orders
				WHERE scheduled_date >= date_trunc('week', CURRENT_DATE)
				AND scheduled_date < date_trunc('week', CURRENT_DATE) + INTERVAL '7 days'
				AND status NOT IN ('cancelled')),
			(SELECT COUNT(*) FROM manufacturing_orders WHERE status = 'in_progress'),
			(SELECT COUNT(*) FROM deliveries WHERE delivery_date = CURRENT_DATE AND status = 'scheduled'),
			(SELECT COUNT(*) FROM employees WHERE is_active),
			(SELECT COUNT(*) FROM clients WHERE is_active)`

	err = q.QueryRow(ctx, opsQuery).Scan(
		&o.MOsScheduledWeek, &o.MOsInProgress, &o.DeliveriesDueToday,
		&o.ActiveEmployees, &o.ActiveClients)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to count operations: %w", err)
	}

	payrollQuery := `
		SELECT to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), employee_count, total_net_pay
		FROM payroll_periods
		ORDER BY start_date DESC
		LIMIT 1`

	var snap dashboard.PayrollSnapshot
	err = q.QueryRow(ctx, payrollQuery).Scan(&snap.PeriodStart, &snap.PeriodEnd, &snap.EmployeeCount, &snap.TotalNetPay)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return dashboard.Overview{}, fmt.Errorf("failed to get last payroll: %w", err)
		}
	} else {
		o.LastPayroll = &snap
	}

	return o, nil
}
