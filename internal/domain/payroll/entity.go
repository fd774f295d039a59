package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusCompleted LoanStatus = "completed"
)

// EmployeeLoan is a staff advance repaid by a fixed instalment each pay
// run until the balance reaches zero.
type EmployeeLoan struct {
	ID                 string
	EmployeeID         string
	Description        *string
	OutstandingBalance decimal.Decimal
	MonthlyPayment     decimal.Decimal
	StartDate          time.Time
	Status             LoanStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Calculation is one employee's pay for one run. It exists only in
// memory until the run is committed.
type Calculation struct {
	EmployeeID        string
	ClockNumber       string
	EmployeeName      string
	EmployeeType      string
	TotalWorkedHours  float64
	TotalWeekendHours float64
	TotalPaidHours    float64
	HourlyRate        decimal.Decimal
	BonusPay          decimal.Decimal
	GrossPay          decimal.Decimal
	LoanDeductions    decimal.Decimal
	OtherDeductions   decimal.Decimal
	NetPay            decimal.Decimal
}

// PayrollPeriod is the persisted audit snapshot written when a run is
// committed. Totals are frozen at commit time, not recomputed from rows.
type PayrollPeriod struct {
	ID                string
	StartDate         time.Time
	EndDate           time.Time
	PayDate           time.Time
	Status            PeriodStatus
	EmployeeCount     int
	TotalWorkedHours  float64
	TotalWeekendHours float64
	TotalPaidHours    float64
	TotalGrossPay     decimal.Decimal
	TotalLoans        decimal.Decimal
	TotalDeductions   decimal.Decimal
	TotalNetPay       decimal.Decimal
	CreatedAt         time.Time
}

// PayrollRecord is the per-employee line of a committed period.
type PayrollRecord struct {
	ID                string
	PayrollPeriodID   string
	EmployeeID        string
	ClockNumber       string
	EmployeeName      string
	TotalWorkedHours  float64
	TotalWeekendHours float64
	TotalPaidHours    float64
	HourlyRate        decimal.Decimal
	BonusPay          decimal.Decimal
	GrossPay          decimal.Decimal
	LoanDeductions    decimal.Decimal
	OtherDeductions   decimal.Decimal
	NetPay            decimal.Decimal
	CreatedAt         time.Time
}

// LoanPayment records the instalment applied to a loan at commit time.
type LoanPayment struct {
	LoanID string
	Amount decimal.Decimal
}

// Settings holds company-level payroll configuration.
type Settings struct {
	ID                 string
	DefaultCappedHours float64
	CompanyName        string
	UpdatedAt          time.Time
}
