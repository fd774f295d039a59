package payroll

import (
	"github.com/boxline/boxline-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PeriodResponse is a resolved fortnight, committed or not.
type PeriodResponse struct {
	ID        *string `json:"id,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	PayDate   string  `json:"pay_date"`
	Status    string  `json:"status"`
	Committed bool    `json:"committed"`
}

type ResolvedPeriodsResponse struct {
	Previous PeriodResponse `json:"previous"`
	Current  PeriodResponse `json:"current"`
	Next     PeriodResponse `json:"next"`
}

// RowOverride carries the per-employee edits made during a run: bonus
// and both deduction fields. A nil field keeps the computed default.
type RowOverride struct {
	EmployeeID      string           `json:"employee_id"`
	BonusPay        *decimal.Decimal `json:"bonus_pay,omitempty"`
	LoanDeductions  *decimal.Decimal `json:"loan_deductions,omitempty"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`
}

type RunPayrollRequest struct {
	// StartDate selects the period; it must be epoch-aligned. Empty
	// means the current period.
	StartDate string        `json:"start_date,omitempty"`
	Overrides []RowOverride `json:"overrides,omitempty"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	for _, o := range r.Overrides {
		if validator.IsEmpty(o.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "overrides.employee_id", Message: "is required"})
			break
		}
	}
	for _, o := range r.Overrides {
		if o.BonusPay != nil && o.BonusPay.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overrides.bonus_pay", Message: "must be non-negative"})
			break
		}
		if o.LoanDeductions != nil && o.LoanDeductions.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overrides.loan_deductions", Message: "must be non-negative"})
			break
		}
		if o.OtherDeductions != nil && o.OtherDeductions.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overrides.other_deductions", Message: "must be non-negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	EmployeeID        string          `json:"employee_id"`
	ClockNumber       string          `json:"clock_number"`
	EmployeeName      string          `json:"employee_name"`
	EmployeeType      string          `json:"employee_type"`
	TotalWorkedHours  float64         `json:"total_worked_hours"`
	TotalWeekendHours float64         `json:"total_weekend_hours"`
	TotalPaidHours    float64         `json:"total_paid_hours"`
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	BonusPay          decimal.Decimal `json:"bonus_pay"`
	GrossPay          decimal.Decimal `json:"gross_pay"`
	LoanDeductions    decimal.Decimal `json:"loan_deductions"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
	NetPay            decimal.Decimal `json:"net_pay"`
}

type RunPayrollResponse struct {
	Period       PeriodResponse        `json:"period"`
	Calculations []CalculationResponse `json:"calculations"`
	Totals       TotalsResponse        `json:"totals"`
}

type TotalsResponse struct {
	EmployeeCount     int             `json:"employee_count"`
	TotalWorkedHours  float64         `json:"total_worked_hours"`
	TotalWeekendHours float64         `json:"total_weekend_hours"`
	TotalPaidHours    float64         `json:"total_paid_hours"`
	TotalGrossPay     decimal.Decimal `json:"total_gross_pay"`
	TotalLoans        decimal.Decimal `json:"total_loans"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	TotalNetPay       decimal.Decimal `json:"total_net_pay"`
}

type CommittedPeriodResponse struct {
	Period  PeriodResponse        `json:"period"`
	Totals  TotalsResponse        `json:"totals"`
	Records []CalculationResponse `json:"records"`
}

// ========== LOAN DTOs ==========

type CreateLoanRequest struct {
	EmployeeID     string          `json:"employee_id"`
	Description    *string         `json:"description,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	StartDate      string          `json:"start_date"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !r.MonthlyPayment.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_payment", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	Description        *string         `json:"description,omitempty"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
	StartDate          string          `json:"start_date"`
	Status             string          `json:"status"`
}

// ========== SETTINGS DTOs ==========

type SettingsResponse struct {
	DefaultCappedHours float64 `json:"default_capped_hours"`
	CompanyName        string  `json:"company_name"`
}

type UpdateSettingsRequest struct {
	DefaultCappedHours *float64 `json:"default_capped_hours,omitempty"`
	CompanyName        *string  `json:"company_name,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DefaultCappedHours != nil && (*r.DefaultCappedHours < 0 || *r.DefaultCappedHours > 24) {
		errs = append(errs, validator.ValidationError{Field: "default_capped_hours", Message: "must be between 0 and 24"})
	}
	if r.CompanyName != nil && validator.IsEmpty(*r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
