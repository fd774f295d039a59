package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// Loans
	CreateLoan(ctx context.Context, loan EmployeeLoan) (EmployeeLoan, error)
	GetLoanByID(ctx context.Context, id string) (EmployeeLoan, error)
	ListLoans(ctx context.Context, activeOnly bool) ([]EmployeeLoan, error)
	ListLoansByEmployee(ctx context.Context, employeeID string) ([]EmployeeLoan, error)

	// Committed periods
	GetPeriodByStartDate(ctx context.Context, startDate time.Time) (PayrollPeriod, error)
	GetPeriodByID(ctx context.Context, id string) (PayrollPeriod, error)
	ListPeriods(ctx context.Context, limit int) ([]PayrollPeriod, error)
	GetRecordsByPeriodID(ctx context.Context, periodID string) ([]PayrollRecord, error)

	// CommitPayroll persists the period snapshot, its per-employee
	// records and the loan decrements in a single transaction. Either
	// all three land or none do.
	CommitPayroll(ctx context.Context, period PayrollPeriod, records []PayrollRecord, payments []LoanPayment) (PayrollPeriod, error)

	// Settings
	GetSettings(ctx context.Context) (Settings, error)
	UpsertSettings(ctx context.Context, settings Settings) (Settings, error)
}
