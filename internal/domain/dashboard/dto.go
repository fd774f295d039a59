package dashboard

import "github.com/shopspring/decimal"

// Overview is the canned reporting snapshot shown on the admin landing
// screen. Every figure is a single aggregate query; nothing is derived
// client-side.
type Overview struct {
	OrderCounts        OrderCounts      `json:"order_counts"`
	MOsScheduledWeek   int64            `json:"mos_scheduled_this_week"`
	MOsInProgress      int64            `json:"mos_in_progress"`
	DeliveriesDueToday int64            `json:"deliveries_due_today"`
	ActiveEmployees    int64            `json:"active_employees"`
	ActiveClients      int64            `json:"active_clients"`
	LastPayroll        *PayrollSnapshot `json:"last_payroll,omitempty"`
}

type OrderCounts struct {
	New          int64 `json:"new"`
	Incomplete   int64 `json:"incomplete"`
	Confirmed    int64 `json:"confirmed"`
	InProduction int64 `json:"in_production"`
	Delivered    int64 `json:"delivered"`
	Cancelled    int64 `json:"cancelled"`
}

type PayrollSnapshot struct {
	PeriodStart   string          `json:"period_start"`
	PeriodEnd     string          `json:"period_end"`
	EmployeeCount int             `json:"employee_count"`
	TotalNetPay   decimal.Decimal `json:"total_net_pay"`
}
