package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/employee"
	"github.com/boxline/boxline-backend-go/internal/domain/payroll"
	"github.com/boxline/boxline-backend-go/internal/domain/timerecord"
	"github.com/boxline/boxline-backend-go/internal/pkg/export"
	"github.com/boxline/boxline-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	timeRecordRepo timerecord.TimeRecordRepository
	companyName    string
	now            func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	timeRecordRepo timerecord.TimeRecordRepository,
	companyName string,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		timeRecordRepo: timeRecordRepo,
		companyName:    companyName,
		now:            time.Now,
	}
}

func (s *PayrollServiceImpl) ResolvePeriods(ctx context.Context) (payroll.ResolvedPeriodsResponse, error) {
	current := payroll.PeriodFor(s.now())

	previous, err := s.periodResponse(ctx, current.Previous())
	if err != nil {
		return payroll.ResolvedPeriodsResponse{}, err
	}
	cur, err := s.periodResponse(ctx, current)
	if err != nil {
		return payroll.ResolvedPeriodsResponse{}, err
	}
	next, err := s.periodResponse(ctx, current.Next())
	if err != nil {
		return payroll.ResolvedPeriodsResponse{}, err
	}

	return payroll.ResolvedPeriodsResponse{
		Previous: previous,
		Current:  cur,
		Next:     next,
	}, nil
}

func (s *PayrollServiceImpl) periodResponse(ctx context.Context, p payroll.PayPeriod) (payroll.PeriodResponse, error) {
	resp := payroll.PeriodResponse{
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		PayDate:   p.PayDate.Format("2006-01-02"),
		Status:    string(p.Status(s.now())),
	}

	committed, err := s.payrollRepo.GetPeriodByStartDate(ctx, p.StartDate)
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return resp, nil
		}
		return payroll.PeriodResponse{}, err
	}

	resp.ID = &committed.ID
	resp.Committed = true
	return resp, nil
}

func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	period, calcs, _, err := s.buildRun(ctx, req)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	pr, err := s.periodResponse(ctx, period)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	return payroll.RunPayrollResponse{
		Period:       pr,
		Calculations: toCalculationResponses(calcs),
		Totals:       toTotalsResponse(payroll.Totals(calcs)),
	}, nil
}

// CommitPayroll recomputes the run server-side and persists it. Client
// overrides are inputs; totals are never trusted from the request.
func (s *PayrollServiceImpl) CommitPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.CommittedPeriodResponse, error) {
	period, calcs, payments, err := s.buildRun(ctx, req)
	if err != nil {
		return payroll.CommittedPeriodResponse{}, err
	}

	if _, err := s.payrollRepo.GetPeriodByStartDate(ctx, period.StartDate); err == nil {
		return payroll.CommittedPeriodResponse{}, payroll.ErrPeriodAlreadyCommitted
	} else if !errors.Is(err, payroll.ErrPeriodNotFound) {
		return payroll.CommittedPeriodResponse{}, err
	}

	snapshot := payroll.Totals(calcs)
	snapshot.StartDate = period.StartDate
	snapshot.EndDate = period.EndDate
	snapshot.PayDate = period.PayDate
	snapshot.Status = payroll.PeriodStatusCompleted

	records := make([]payroll.PayrollRecord, 0, len(calcs))
	for _, c := range calcs {
		records = append(records, payroll.PayrollRecord{
			EmployeeID:        c.EmployeeID,
			ClockNumber:       c.ClockNumber,
			EmployeeName:      c.EmployeeName,
			TotalWorkedHours:  c.TotalWorkedHours,
			TotalWeekendHours: c.TotalWeekendHours,
			TotalPaidHours:    c.TotalPaidHours,
			HourlyRate:        c.HourlyRate,
			BonusPay:          c.BonusPay,
			GrossPay:          c.GrossPay,
			LoanDeductions:    c.LoanDeductions,
			OtherDeductions:   c.OtherDeductions,
			NetPay:            c.NetPay,
		})
	}

	committed, err := s.payrollRepo.CommitPayroll(ctx, snapshot, records, payments)
	if err != nil {
		return payroll.CommittedPeriodResponse{}, err
	}

	return payroll.CommittedPeriodResponse{
		Period:  committedPeriodResponse(committed),
		Totals:  toTotalsResponse(committed),
		Records: toCalculationResponses(calcs),
	}, nil
}

// buildRun computes every employee's pay for the requested period and
// the loan payments the run would apply if committed.
func (s *PayrollServiceImpl) buildRun(ctx context.Context, req payroll.RunPayrollRequest) (payroll.PayPeriod, []payroll.Calculation, []payroll.LoanPayment, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayPeriod{}, nil, nil, err
	}

	period := payroll.PeriodFor(s.now())
	if req.StartDate != "" {
		start, _ := time.Parse("2006-01-02", req.StartDate)
		period = payroll.PeriodFor(start)
		if !period.StartDate.Equal(start.UTC().Truncate(24 * time.Hour)) {
			return payroll.PayPeriod{}, nil, nil, validator.ValidationErrors{
				{Field: "start_date", Message: "must be a pay period start date"},
			}
		}
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.PayPeriod{}, nil, nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if len(employees) == 0 {
		return payroll.PayPeriod{}, nil, nil, payroll.ErrNoEmployees
	}

	settings := s.settingsOrDefault(ctx)

	records, err := s.timeRecordRepo.ListByRange(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.PayPeriod{}, nil, nil, fmt.Errorf("failed to load time records: %w", err)
	}
	daysByClock := make(map[string][]payroll.DayHours)
	for _, r := range records {
		daysByClock[r.EmployeeClockNumber] = append(daysByClock[r.EmployeeClockNumber], payroll.DayHours{
			Date:      r.WorkDate,
			Hours:     r.HoursWorked,
			IsWeekend: r.IsWeekend,
		})
	}

	loans, err := s.payrollRepo.ListLoans(ctx, true)
	if err != nil {
		return payroll.PayPeriod{}, nil, nil, fmt.Errorf("failed to load loans: %w", err)
	}
	loansByEmployee := make(map[string][]payroll.EmployeeLoan)
	for _, l := range loans {
		loansByEmployee[l.EmployeeID] = append(loansByEmployee[l.EmployeeID], l)
	}

	overrides := make(map[string]payroll.RowOverride, len(req.Overrides))
	for _, o := range req.Overrides {
		overrides[o.EmployeeID] = o
	}
	for id := range overrides {
		found := false
		for _, e := range employees {
			if e.ID == id {
				found = true
				break
			}
		}
		if !found {
			return payroll.PayPeriod{}, nil, nil, payroll.ErrUnknownEmployee
		}
	}

	var (
		calcs    []payroll.Calculation
		payments []payroll.LoanPayment
	)
	for _, e := range employees {
		minimumShift := e.CappedHours
		if minimumShift <= 0 {
			minimumShift = settings.DefaultCappedHours
		}
		totals := payroll.AggregateHours(daysByClock[e.ClockNumber], minimumShift)

		c := payroll.Calculation{
			EmployeeID:        e.ID,
			ClockNumber:       e.ClockNumber,
			EmployeeName:      e.FullName(),
			EmployeeType:      string(e.EmployeeType),
			TotalWorkedHours:  totals.WorkedHours,
			TotalWeekendHours: totals.WeekendHours,
			HourlyRate:        e.HourlyRate,
			BonusPay:          decimal.Zero,
			LoanDeductions:    decimal.Zero,
			OtherDeductions:   decimal.Zero,
		}

		employeeLoans := loansByEmployee[e.ID]
		sort.Slice(employeeLoans, func(i, j int) bool {
			return employeeLoans[i].StartDate.Before(employeeLoans[j].StartDate)
		})

		ov, hasOverride := overrides[e.ID]
		if hasOverride && ov.BonusPay != nil {
			c.BonusPay = *ov.BonusPay
		}
		if hasOverride && ov.OtherDeductions != nil {
			c.OtherDeductions = *ov.OtherDeductions
		}

		var employeePayments []payroll.LoanPayment
		if hasOverride && ov.LoanDeductions != nil {
			// A manual loan deduction is allocated to the employee's
			// loans oldest first, each clamped to its balance.
			c.LoanDeductions = *ov.LoanDeductions
			remaining := *ov.LoanDeductions
			for _, l := range employeeLoans {
				if !remaining.IsPositive() {
					break
				}
				pay := decimal.Min(remaining, l.OutstandingBalance)
				if pay.IsPositive() {
					employeePayments = append(employeePayments, payroll.LoanPayment{LoanID: l.ID, Amount: pay})
					remaining = remaining.Sub(pay)
				}
			}
		} else {
			for _, l := range employeeLoans {
				instalment := payroll.DefaultLoanDeduction(l, period.EndDate)
				if instalment.IsPositive() {
					c.LoanDeductions = c.LoanDeductions.Add(instalment)
					employeePayments = append(employeePayments, payroll.LoanPayment{LoanID: l.ID, Amount: instalment})
				}
			}
		}

		c.Recompute()
		calcs = append(calcs, c)
		payments = append(payments, employeePayments...)
	}

	sort.Slice(calcs, func(i, j int) bool { return calcs[i].ClockNumber < calcs[j].ClockNumber })

	return period, calcs, payments, nil
}

func (s *PayrollServiceImpl) settingsOrDefault(ctx context.Context) payroll.Settings {
	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		return payroll.Settings{
			DefaultCappedHours: employee.DefaultCappedHours,
			CompanyName:        s.companyName,
		}
	}
	return settings
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, limit int) ([]payroll.PeriodResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 26
	}

	periods, err := s.payrollRepo.ListPeriods(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, committedPeriodResponse(p))
	}

	return responses, nil
}

func (s *PayrollServiceImpl) GetCommittedPeriod(ctx context.Context, id string) (payroll.CommittedPeriodResponse, error) {
	period, records, err := s.loadCommitted(ctx, id)
	if err != nil {
		return payroll.CommittedPeriodResponse{}, err
	}

	return payroll.CommittedPeriodResponse{
		Period:  committedPeriodResponse(period),
		Totals:  toTotalsResponse(period),
		Records: toCalculationResponses(recordsToCalculations(records)),
	}, nil
}

func (s *PayrollServiceImpl) ExportPeriodExcel(ctx context.Context, id string) (string, []byte, error) {
	period, records, err := s.loadCommitted(ctx, id)
	if err != nil {
		return "", nil, err
	}

	content, err := export.PayrollWorkbook(s.exportCompanyName(ctx), toPayPeriod(period), recordsToCalculations(records))
	if err != nil {
		return "", nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	filename := fmt.Sprintf("payroll_%s.xlsx", period.StartDate.Format("2006-01-02"))
	return filename, content, nil
}

func (s *PayrollServiceImpl) ExportPeriodPDF(ctx context.Context, id string) (string, []byte, error) {
	period, records, err := s.loadCommitted(ctx, id)
	if err != nil {
		return "", nil, err
	}

	content, err := export.PayrollSummaryPDF(s.exportCompanyName(ctx), toPayPeriod(period), recordsToCalculations(records))
	if err != nil {
		return "", nil, fmt.Errorf("failed to build pdf: %w", err)
	}

	filename := fmt.Sprintf("payroll_%s.pdf", period.StartDate.Format("2006-01-02"))
	return filename, content, nil
}

func (s *PayrollServiceImpl) loadCommitted(ctx context.Context, id string) (payroll.PayrollPeriod, []payroll.PayrollRecord, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		return payroll.PayrollPeriod{}, nil, err
	}

	records, err := s.payrollRepo.GetRecordsByPeriodID(ctx, period.ID)
	if err != nil {
		return payroll.PayrollPeriod{}, nil, err
	}

	return period, records, nil
}

func (s *PayrollServiceImpl) exportCompanyName(ctx context.Context) string {
	return s.settingsOrDefault(ctx).CompanyName
}

// ========== LOANS ==========

func (s *PayrollServiceImpl) CreateLoan(ctx context.Context, req payroll.CreateLoanRequest) (payroll.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.LoanResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.LoanResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	created, err := s.payrollRepo.CreateLoan(ctx, payroll.EmployeeLoan{
		EmployeeID:         req.EmployeeID,
		Description:        req.Description,
		OutstandingBalance: req.Amount,
		MonthlyPayment:     req.MonthlyPayment,
		StartDate:          startDate,
		Status:             payroll.LoanStatusActive,
	})
	if err != nil {
		return payroll.LoanResponse{}, err
	}

	return toLoanResponse(created), nil
}

func (s *PayrollServiceImpl) ListLoans(ctx context.Context, employeeID *string, activeOnly bool) ([]payroll.LoanResponse, error) {
	var (
		loans []payroll.EmployeeLoan
		err   error
	)
	if employeeID != nil {
		loans, err = s.payrollRepo.ListLoansByEmployee(ctx, *employeeID)
	} else {
		loans, err = s.payrollRepo.ListLoans(ctx, activeOnly)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	responses := make([]payroll.LoanResponse, 0, len(loans))
	for _, l := range loans {
		if activeOnly && l.Status != payroll.LoanStatusActive {
			continue
		}
		responses = append(responses, toLoanResponse(l))
	}

	return responses, nil
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.SettingsResponse, error) {
	settings := s.settingsOrDefault(ctx)
	return payroll.SettingsResponse{
		DefaultCappedHours: settings.DefaultCappedHours,
		CompanyName:        settings.CompanyName,
	}, nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateSettingsRequest) (payroll.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingsResponse{}, err
	}

	current := s.settingsOrDefault(ctx)
	if req.DefaultCappedHours != nil {
		current.DefaultCappedHours = *req.DefaultCappedHours
	}
	if req.CompanyName != nil {
		current.CompanyName = *req.CompanyName
	}

	updated, err := s.payrollRepo.UpsertSettings(ctx, current)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}

	return payroll.SettingsResponse{
		DefaultCappedHours: updated.DefaultCappedHours,
		CompanyName:        updated.CompanyName,
	}, nil
}

// ========== MAPPERS ==========

func committedPeriodResponse(p payroll.PayrollPeriod) payroll.PeriodResponse {
	id := p.ID
	return payroll.PeriodResponse{
		ID:        &id,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		PayDate:   p.PayDate.Format("2006-01-02"),
		Status:    string(p.Status),
		Committed: true,
	}
}

func toPayPeriod(p payroll.PayrollPeriod) payroll.PayPeriod {
	return payroll.PayPeriod{
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		PayDate:   p.PayDate,
	}
}

func recordsToCalculations(records []payroll.PayrollRecord) []payroll.Calculation {
	calcs := make([]payroll.Calculation, 0, len(records))
	for _, r := range records {
		calcs = append(calcs, payroll.Calculation{
			EmployeeID:        r.EmployeeID,
			ClockNumber:       r.ClockNumber,
			EmployeeName:      r.EmployeeName,
			TotalWorkedHours:  r.TotalWorkedHours,
			TotalWeekendHours: r.TotalWeekendHours,
			TotalPaidHours:    r.TotalPaidHours,
			HourlyRate:        r.HourlyRate,
			BonusPay:          r.BonusPay,
			GrossPay:          r.GrossPay,
			LoanDeductions:    r.LoanDeductions,
			OtherDeductions:   r.OtherDeductions,
			NetPay:            r.NetPay,
		})
	}
	return calcs
}

func toCalculationResponses(calcs []payroll.Calculation) []payroll.CalculationResponse {
	responses := make([]payroll.CalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		responses = append(responses, payroll.CalculationResponse{
			EmployeeID:        c.EmployeeID,
			ClockNumber:       c.ClockNumber,
			EmployeeName:      c.EmployeeName,
			EmployeeType:      c.EmployeeType,
			TotalWorkedHours:  c.TotalWorkedHours,
			TotalWeekendHours: c.TotalWeekendHours,
			TotalPaidHours:    c.TotalPaidHours,
			HourlyRate:        c.HourlyRate,
			BonusPay:          c.BonusPay,
			GrossPay:          c.GrossPay,
			LoanDeductions:    c.LoanDeductions,
			OtherDeductions:   c.OtherDeductions,
			NetPay:            c.NetPay,
		})
	}
	return responses
}

func toTotalsResponse(p payroll.PayrollPeriod) payroll.TotalsResponse {
	return payroll.TotalsResponse{
		EmployeeCount:     p.EmployeeCount,
		TotalWorkedHours:  p.TotalWorkedHours,
		TotalWeekendHours: p.TotalWeekendHours,
		TotalPaidHours:    p.TotalPaidHours,
		TotalGrossPay:     p.TotalGrossPay,
		TotalLoans:        p.TotalLoans,
		TotalDeductions:   p.TotalDeductions,
		TotalNetPay:       p.TotalNetPay,
	}
}

func toLoanResponse(l payroll.EmployeeLoan) payroll.LoanResponse {
	return payroll.LoanResponse{
		ID:                 l.ID,
		EmployeeID:         l.EmployeeID,
		Description:        l.Description,
		OutstandingBalance: l.OutstandingBalance,
		MonthlyPayment:     l.MonthlyPayment,
		StartDate:          l.StartDate.Format("2006-01-02"),
		Status:             string(l.Status),
	}
}
