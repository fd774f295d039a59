package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/employee"
	"github.com/boxline/boxline-backend-go/internal/domain/payroll"
	"github.com/boxline/boxline-backend-go/internal/domain/timerecord"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByClockNumber(ctx context.Context, clockNumber string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ClockNumber == clockNumber {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type fakeTimeRecordRepo struct {
	records []timerecord.TimeRecord
}

func (f *fakeTimeRecordRepo) ReplaceRange(ctx context.Context, clockNumbers []string, from, to time.Time, records []timerecord.TimeRecord) (int, error) {
	f.records = append(f.records, records...)
	return 0, nil
}

func (f *fakeTimeRecordRepo) ListByRange(ctx context.Context, from, to time.Time) ([]timerecord.TimeRecord, error) {
	var matched []timerecord.TimeRecord
	for _, r := range f.records {
		if !r.WorkDate.Before(from) && !r.WorkDate.After(to) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeTimeRecordRepo) ListByClockNumber(ctx context.Context, clockNumber string, from, to time.Time) ([]timerecord.TimeRecord, error) {
	var matched []timerecord.TimeRecord
	for _, r := range f.records {
		if r.EmployeeClockNumber == clockNumber {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

type fakePayrollRepo struct {
	loans     []payroll.EmployeeLoan
	periods   []payroll.PayrollPeriod
	records   map[string][]payroll.PayrollRecord
	payments  []payroll.LoanPayment
	settings  *payroll.Settings
	committed int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string][]payroll.PayrollRecord)}
}

func (f *fakePayrollRepo) CreateLoan(ctx context.Context, loan payroll.EmployeeLoan) (payroll.EmployeeLoan, error) {
	f.loans = append(f.loans, loan)
	return loan, nil
}

func (f *fakePayrollRepo) GetLoanByID(ctx context.Context, id string) (payroll.EmployeeLoan, error) {
	for _, l := range f.loans {
		if l.ID == id {
			return l, nil
		}
	}
	return payroll.EmployeeLoan{}, payroll.ErrLoanNotFound
}

func (f *fakePayrollRepo) ListLoans(ctx context.Context, activeOnly bool) ([]payroll.EmployeeLoan, error) {
	if !activeOnly {
		return f.loans, nil
	}
	var active []payroll.EmployeeLoan
	for _, l := range f.loans {
		if l.Status == payroll.LoanStatusActive && l.OutstandingBalance.IsPositive() {
			active = append(active, l)
		}
	}
	return active, nil
}

func (f *fakePayrollRepo) ListLoansByEmployee(ctx context.Context, employeeID string) ([]payroll.EmployeeLoan, error) {
	var matched []payroll.EmployeeLoan
	for _, l := range f.loans {
		if l.EmployeeID == employeeID {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (f *fakePayrollRepo) GetPeriodByStartDate(ctx context.Context, startDate time.Time) (payroll.PayrollPeriod, error) {
	for _, p := range f.periods {
		if p.StartDate.Equal(startDate) {
			return p, nil
		}
	}
	return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
}

func (f *fakePayrollRepo) GetPeriodByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	for _, p := range f.periods {
		if p.ID == id {
			return p, nil
		}
	}
	return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
}

func (f *fakePayrollRepo) ListPeriods(ctx context.Context, limit int) ([]payroll.PayrollPeriod, error) {
	return f.periods, nil
}

func (f *fakePayrollRepo) GetRecordsByPeriodID(ctx context.Context, periodID string) ([]payroll.PayrollRecord, error) {
	return f.records[periodID], nil
}

func (f *fakePayrollRepo) CommitPayroll(ctx context.Context, period payroll.PayrollPeriod, records []payroll.PayrollRecord, payments []payroll.LoanPayment) (payroll.PayrollPeriod, error) {
	for _, p := range f.periods {
		if p.StartDate.Equal(period.StartDate) {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodAlreadyCommitted
		}
	}
	period.ID = "period-" + period.StartDate.Format("2006-01-02")
	f.periods = append(f.periods, period)
	f.records[period.ID] = records
	f.payments = append(f.payments, payments...)
	for _, pay := range payments {
		for i := range f.loans {
			if f.loans[i].ID == pay.LoanID {
				f.loans[i].OutstandingBalance = decimal.Max(f.loans[i].OutstandingBalance.Sub(pay.Amount), decimal.Zero)
				if f.loans[i].OutstandingBalance.IsZero() {
					f.loans[i].Status = payroll.LoanStatusCompleted
				}
			}
		}
	}
	f.committed++
	return period, nil
}

func (f *fakePayrollRepo) GetSettings(ctx context.Context) (payroll.Settings, error) {
	if f.settings == nil {
		return payroll.Settings{}, payroll.ErrSettingsNotFound
	}
	return *f.settings, nil
}

func (f *fakePayrollRepo) UpsertSettings(ctx context.Context, settings payroll.Settings) (payroll.Settings, error) {
	f.settings = &settings
	return settings, nil
}

// fixedNow is a date inside the period starting at the epoch.
var fixedNow = time.Date(2025, time.June, 25, 10, 0, 0, 0, time.UTC)

func newTestService(empRepo *fakeEmployeeRepo, trRepo *fakeTimeRecordRepo, pRepo *fakePayrollRepo) *PayrollServiceImpl {
	svc := NewPayrollService(pRepo, empRepo, trRepo, "Boxline Packaging").(*PayrollServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func testEmployee(id, clock string, rate float64) employee.Employee {
	return employee.Employee{
		ID:           id,
		ClockNumber:  clock,
		FirstName:    "Test",
		LastName:     "Worker " + clock,
		HourlyRate:   decimal.NewFromFloat(rate),
		EmployeeType: employee.TypeCasual,
		CappedHours:  11,
		IsActive:     true,
	}
}

func TestRunPayrollFloorsEachDay(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 25)}}
	trRepo := &fakeTimeRecordRepo{}
	pRepo := newFakePayrollRepo()

	// Mon 2025-06-23: 8h floored to 11. Tue: 13h kept. Sat 2025-06-28: 4h floored to 11, weekend.
	days := []struct {
		date    time.Time
		hours   float64
		weekend bool
	}{
		{time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), 8, false},
		{time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC), 13, false},
		{time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC), 4, true},
	}
	for _, d := range days {
		trRepo.records = append(trRepo.records, timerecord.TimeRecord{
			EmployeeClockNumber: "101",
			WorkDate:            d.date,
			HoursWorked:         d.hours,
			IsWeekend:           d.weekend,
		})
	}

	svc := newTestService(empRepo, trRepo, pRepo)
	result, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{})
	require.NoError(t, err)
	require.Len(t, result.Calculations, 1)

	c := result.Calculations[0]
	assert.Equal(t, 35.0, c.TotalWorkedHours)
	assert.Equal(t, 11.0, c.TotalWeekendHours)
	assert.Equal(t, 24.0, c.TotalPaidHours)
	assert.True(t, decimal.NewFromInt(600).Equal(c.GrossPay), "got %s", c.GrossPay)
	assert.False(t, result.Period.Committed)
}

func TestRunPayrollEmployeeWithoutRecords(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 25)}}
	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, newFakePayrollRepo())

	result, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{})
	require.NoError(t, err)
	require.Len(t, result.Calculations, 1)

	c := result.Calculations[0]
	assert.Zero(t, c.TotalWorkedHours)
	assert.True(t, c.GrossPay.IsZero())
	assert.True(t, c.NetPay.IsZero())
}

func TestRunPayrollDeductsLoanInstalment(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 20)}}
	pRepo := newFakePayrollRepo()
	pRepo.loans = []payroll.EmployeeLoan{{
		ID:                 "loan1",
		EmployeeID:         "e1",
		OutstandingBalance: decimal.NewFromInt(100),
		MonthlyPayment:     decimal.NewFromInt(150),
		StartDate:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:             payroll.LoanStatusActive,
	}}

	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, pRepo)
	result, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{})
	require.NoError(t, err)

	// Final instalment is clamped to the remaining balance.
	c := result.Calculations[0]
	assert.True(t, decimal.NewFromInt(100).Equal(c.LoanDeductions), "got %s", c.LoanDeductions)
	assert.True(t, decimal.NewFromInt(-100).Equal(c.NetPay), "got %s", c.NetPay)
}

func TestRunPayrollAppliesOverrides(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 20)}}
	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, newFakePayrollRepo())

	bonus := decimal.NewFromInt(200)
	other := decimal.NewFromInt(50)
	result, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{
		Overrides: []payroll.RowOverride{{EmployeeID: "e1", BonusPay: &bonus, OtherDeductions: &other}},
	})
	require.NoError(t, err)

	c := result.Calculations[0]
	assert.True(t, decimal.NewFromInt(200).Equal(c.GrossPay))
	assert.True(t, decimal.NewFromInt(150).Equal(c.NetPay))
}

func TestRunPayrollRejectsUnknownOverride(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 20)}}
	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, newFakePayrollRepo())

	bonus := decimal.NewFromInt(10)
	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{
		Overrides: []payroll.RowOverride{{EmployeeID: "ghost", BonusPay: &bonus}},
	})
	assert.ErrorIs(t, err, payroll.ErrUnknownEmployee)
}

func TestRunPayrollRejectsMisalignedStartDate(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 20)}}
	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, newFakePayrollRepo())

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{StartDate: "2025-06-19"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
}

func TestRunPayrollNoEmployees(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeTimeRecordRepo{}, newFakePayrollRepo())

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{})
	assert.ErrorIs(t, err, payroll.ErrNoEmployees)
}

func TestCommitPayrollPersistsAndDecrementsLoans(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 20)}}
	pRepo := newFakePayrollRepo()
	pRepo.loans = []payroll.EmployeeLoan{{
		ID:                 "loan1",
		EmployeeID:         "e1",
		OutstandingBalance: decimal.NewFromInt(500),
		MonthlyPayment:     decimal.NewFromInt(150),
		StartDate:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:             payroll.LoanStatusActive,
	}}

	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, pRepo)
	result, err := svc.CommitPayroll(context.Background(), payroll.RunPayrollRequest{})
	require.NoError(t, err)

	assert.True(t, result.Period.Committed)
	assert.Equal(t, 1, pRepo.committed)
	require.Len(t, pRepo.payments, 1)
	assert.True(t, decimal.NewFromInt(150).Equal(pRepo.payments[0].Amount))
	assert.True(t, decimal.NewFromInt(350).Equal(pRepo.loans[0].OutstandingBalance))
}

func TestCommitPayrollTwiceFails(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 20)}}
	pRepo := newFakePayrollRepo()

	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, pRepo)
	_, err := svc.CommitPayroll(context.Background(), payroll.RunPayrollRequest{})
	require.NoError(t, err)

	_, err = svc.CommitPayroll(context.Background(), payroll.RunPayrollRequest{})
	assert.ErrorIs(t, err, payroll.ErrPeriodAlreadyCommitted)
	assert.Equal(t, 1, pRepo.committed)
}

func TestResolvePeriodsFlagsCommitted(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 20)}}
	pRepo := newFakePayrollRepo()

	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, pRepo)

	resolved, err := svc.ResolvePeriods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-06-18", resolved.Current.StartDate)
	assert.Equal(t, "2025-07-01", resolved.Current.EndDate)
	assert.Equal(t, "2025-07-02", resolved.Current.PayDate)
	assert.False(t, resolved.Current.Committed)

	_, err = svc.CommitPayroll(context.Background(), payroll.RunPayrollRequest{})
	require.NoError(t, err)

	resolved, err = svc.ResolvePeriods(context.Background())
	require.NoError(t, err)
	assert.True(t, resolved.Current.Committed)
	assert.False(t, resolved.Previous.Committed)
	assert.False(t, resolved.Next.Committed)
}

func TestManualLoanDeductionAllocation(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("e1", "101", 20)}}
	pRepo := newFakePayrollRepo()
	pRepo.loans = []payroll.EmployeeLoan{
		{
			ID:                 "old",
			EmployeeID:         "e1",
			OutstandingBalance: decimal.NewFromInt(60),
			MonthlyPayment:     decimal.NewFromInt(50),
			StartDate:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:             payroll.LoanStatusActive,
		},
		{
			ID:                 "new",
			EmployeeID:         "e1",
			OutstandingBalance: decimal.NewFromInt(500),
			MonthlyPayment:     decimal.NewFromInt(50),
			StartDate:          time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			Status:             payroll.LoanStatusActive,
		},
	}

	override := decimal.NewFromInt(100)
	svc := newTestService(empRepo, &fakeTimeRecordRepo{}, pRepo)
	_, err := svc.CommitPayroll(context.Background(), payroll.RunPayrollRequest{
		Overrides: []payroll.RowOverride{{EmployeeID: "e1", LoanDeductions: &override}},
	})
	require.NoError(t, err)

	// Oldest loan absorbs its full balance, the remainder goes to the next.
	require.Len(t, pRepo.payments, 2)
	assert.True(t, pRepo.loans[0].OutstandingBalance.IsZero())
	assert.Equal(t, payroll.LoanStatusCompleted, pRepo.loans[0].Status)
	assert.True(t, decimal.NewFromInt(460).Equal(pRepo.loans[1].OutstandingBalance))
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeTimeRecordRepo{}, newFakePayrollRepo())

	capped := 10.5
	updated, err := svc.UpdateSettings(context.Background(), payroll.UpdateSettingsRequest{DefaultCappedHours: &capped})
	require.NoError(t, err)
	assert.Equal(t, 10.5, updated.DefaultCappedHours)
	assert.Equal(t, "Boxline Packaging", updated.CompanyName)

	got, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10.5, got.DefaultCappedHours)
}
