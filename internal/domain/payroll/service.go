package payroll

import "context"

type PayrollService interface {
	// ResolvePeriods returns the previous, current and next fortnight
	// relative to today, flagging any that have already been committed.
	ResolvePeriods(ctx context.Context) (ResolvedPeriodsResponse, error)

	// RunPayroll computes a full pay run for the requested period
	// without persisting anything.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)

	// CommitPayroll recomputes the run and persists the period
	// snapshot, its records and the loan decrements atomically. A
	// period can only be committed once.
	CommitPayroll(ctx context.Context, req RunPayrollRequest) (CommittedPeriodResponse, error)

	ListPeriods(ctx context.Context, limit int) ([]PeriodResponse, error)
	GetCommittedPeriod(ctx context.Context, id string) (CommittedPeriodResponse, error)

	// ExportPeriodExcel renders a committed period as an xlsx workbook.
	ExportPeriodExcel(ctx context.Context, id string) (filename string, content []byte, err error)

	// ExportPeriodPDF renders a committed period as a summary PDF.
	ExportPeriodPDF(ctx context.Context, id string) (filename string, content []byte, err error)

	CreateLoan(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	ListLoans(ctx context.Context, employeeID *string, activeOnly bool) ([]LoanResponse, error)

	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
