package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/payroll"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== LOANS ==========

const loanColumns = `id, employee_id, description, outstanding_balance, monthly_payment, start_date, status, created_at, updated_at`

func scanLoan(row pgx.Row) (payroll.EmployeeLoan, error) {
	var l payroll.EmployeeLoan
	err := row.Scan(&l.ID, &l.EmployeeID, &l.Description, &l.OutstandingBalance, &l.MonthlyPayment, &l.StartDate, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *payrollRepository) CreateLoan(ctx context.Context, loan payroll.EmployeeLoan) (payroll.EmployeeLoan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_loans (employee_id, description, outstanding_balance, monthly_payment, start_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + loanColumns

	created, err := scanLoan(q.QueryRow(ctx, query,
		loan.EmployeeID, loan.Description, loan.OutstandingBalance, loan.MonthlyPayment, loan.StartDate, loan.Status))
	if err != nil {
		return payroll.EmployeeLoan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetLoanByID(ctx context.Context, id string) (payroll.EmployeeLoan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + loanColumns + ` FROM employee_loans WHERE id = $1`

	l, err := scanLoan(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.EmployeeLoan{}, payroll.ErrLoanNotFound
		}
		return payroll.EmployeeLoan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return l, nil
}

func (r *payrollRepository) ListLoans(ctx context.Context, activeOnly bool) ([]payroll.EmployeeLoan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + loanColumns + ` FROM employee_loans`
	if activeOnly {
		query += ` WHERE status = 'active' AND outstanding_balance > 0`
	}
	query += ` ORDER BY start_date`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []payroll.EmployeeLoan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	return loans, nil
}

func (r *payrollRepository) ListLoansByEmployee(ctx context.Context, employeeID string) ([]payroll.EmployeeLoan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + loanColumns + ` FROM employee_loans WHERE employee_id = $1 ORDER BY start_date`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee loans: %w", err)
	}
	defer rows.Close()

	var loans []payroll.EmployeeLoan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	return loans, nil
}

// ========== COMMITTED PERIODS ==========

const periodColumns = `id, start_date, end_date, pay_date, status, employee_count,
	total_worked_hours, total_weekend_hours, total_paid_hours,
	total_gross_pay, total_loans, total_deductions, total_net_pay, created_at`

func scanPeriod(row pgx.Row) (payroll.PayrollPeriod, error) {
	var p payroll.PayrollPeriod
	err := row.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.PayDate, &p.Status, &p.EmployeeCount,
		&p.TotalWorkedHours, &p.TotalWeekendHours, &p.TotalPaidHours,
		&p.TotalGrossPay, &p.TotalLoans, &p.TotalDeductions, &p.TotalNetPay, &p.CreatedAt)
	return p, err
}

func (r *payrollRepository) GetPeriodByStartDate(ctx context.Context, startDate time.Time) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE start_date = $1`

	p, err := scanPeriod(q.QueryRow(ctx, query, startDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPeriodByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListPeriods(ctx context.Context, limit int) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods ORDER BY start_date DESC LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}

const recordColumns = `id, payroll_period_id, employee_id, clock_number, employee_name,
	total_worked_hours, total_weekend_hours, total_paid_hours, hourly_rate,
	bonus_pay, gross_pay, loan_deductions, other_deductions, net_pay, created_at`

func (r *payrollRepository) GetRecordsByPeriodID(ctx context.Context, periodID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM payroll_records WHERE payroll_period_id = $1 ORDER BY clock_number`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(&rec.ID, &rec.PayrollPeriodID, &rec.EmployeeID, &rec.ClockNumber, &rec.EmployeeName,
			&rec.TotalWorkedHours, &rec.TotalWeekendHours, &rec.TotalPaidHours, &rec.HourlyRate,
			&rec.BonusPay, &rec.GrossPay, &rec.LoanDeductions, &rec.OtherDeductions, &rec.NetPay, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// CommitPayroll writes the period snapshot, its records and the loan
// decrements atomically. The unique index on payroll_periods.start_date
// makes a duplicate commit fail inside the same transaction.
func (r *payrollRepository) CommitPayroll(ctx context.Context, period payroll.PayrollPeriod, records []payroll.PayrollRecord, payments []payroll.LoanPayment) (payroll.PayrollPeriod, error) {
	var committed payroll.PayrollPeriod

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		insertPeriod := `
			INSERT INTO payroll_periods (
				start_date, end_date, pay_date, status, employee_count,
				total_worked_hours, total_weekend_hours, total_paid_hours,
				total_gross_pay, total_loans, total_deductions, total_net_pay
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING ` + periodColumns

		var err error
		committed, err = scanPeriod(q.QueryRow(txCtx, insertPeriod,
			period.StartDate, period.EndDate, period.PayDate, period.Status, period.EmployeeCount,
			period.TotalWorkedHours, period.TotalWeekendHours, period.TotalPaidHours,
			period.TotalGrossPay, period.TotalLoans, period.TotalDeductions, period.TotalNetPay,
		))
		if err != nil {
			if strings.Contains(err.Error(), "uk_payroll_periods_start_date") {
				return payroll.ErrPeriodAlreadyCommitted
			}
			return fmt.Errorf("failed to insert payroll period: %w", err)
		}

		for _, rec := range records {
			_, err := q.Exec(txCtx, `
				INSERT INTO payroll_records (
					payroll_period_id, employee_id, clock_number, employee_name,
					total_worked_hours, total_weekend_hours, total_paid_hours, hourly_rate,
					bonus_pay, gross_pay, loan_deductions, other_deductions, net_pay
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			`, committed.ID, rec.EmployeeID, rec.ClockNumber, rec.EmployeeName,
				rec.TotalWorkedHours, rec.TotalWeekendHours, rec.TotalPaidHours, rec.HourlyRate,
				rec.BonusPay, rec.GrossPay, rec.LoanDeductions, rec.OtherDeductions, rec.NetPay)
			if err != nil {
				return fmt.Errorf("failed to insert payroll record: %w", err)
			}
		}

		for _, p := range payments {
			tag, err := q.Exec(txCtx, `
				UPDATE employee_loans
				SET outstanding_balance = GREATEST(outstanding_balance - $2, 0),
					status = CASE WHEN outstanding_balance - $2 <= 0 THEN 'completed' ELSE status END,
					updated_at = NOW()
				WHERE id = $1
			`, p.LoanID, p.Amount)
			if err != nil {
				return fmt.Errorf("failed to apply loan payment: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return payroll.ErrLoanNotFound
			}
		}

		return nil
	})
	if err != nil {
		return payroll.PayrollPeriod{}, err
	}

	return committed, nil
}

// ========== SETTINGS ==========

func (r *payrollRepository) GetSettings(ctx context.Context) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, default_capped_hours, company_name, updated_at FROM payroll_settings LIMIT 1`

	var s payroll.Settings
	err := q.QueryRow(ctx, query).Scan(&s.ID, &s.DefaultCappedHours, &s.CompanyName, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Settings{}, payroll.ErrSettingsNotFound
		}
		return payroll.Settings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) UpsertSettings(ctx context.Context, settings payroll.Settings) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	// Single-row settings table keyed by a fixed id.
	query := `
		INSERT INTO payroll_settings (id, default_capped_hours, company_name)
		VALUES ('default', $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			default_capped_hours = EXCLUDED.default_capped_hours,
			company_name = EXCLUDED.company_name,
			updated_at = NOW()
		RETURNING id, default_capped_hours, company_name, updated_at`

	var s payroll.Settings
	err := q.QueryRow(ctx, query, settings.DefaultCappedHours, settings.CompanyName).Scan(
		&s.ID, &s.DefaultCappedHours, &s.CompanyName, &s.UpdatedAt)
	if err != nil {
		return payroll.Settings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return s, nil
}
