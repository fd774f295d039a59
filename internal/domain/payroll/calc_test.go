package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorToMinimum(t *testing.T) {
	tests := []struct {
		recorded, minimum, want float64
	}{
		{6, 11, 11},
		{13, 11, 13},
		{11, 11, 11},
		{0, 11, 11},
		{8, 0, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorToMinimum(tt.recorded, tt.minimum))
	}
}

func TestAggregateHours_FloorsEachDay(t *testing.T) {
	monday := date(2025, time.June, 23)
	days := []DayHours{
		{Date: monday, Hours: 6},                                      // floored to 11
		{Date: monday.AddDate(0, 0, 1), Hours: 13},                    // kept
		{Date: monday.AddDate(0, 0, 5), Hours: 4, IsWeekend: true},    // floored to 11, weekend
	}

	totals := AggregateHours(days, 11)

	assert.Equal(t, 35.0, totals.WorkedHours)
	assert.Equal(t, 11.0, totals.WeekendHours)
	assert.Equal(t, 24.0, totals.PaidHours)
}

func TestAggregateHours_NoDaysIsZero(t *testing.T) {
	totals := AggregateHours(nil, 11)

	assert.Zero(t, totals.WorkedHours)
	assert.Zero(t, totals.WeekendHours)
	assert.Zero(t, totals.PaidHours)
}

func TestHoursFromTotals_NoFloorOnFallback(t *testing.T) {
	totals := HoursFromTotals(62.5, 8)

	assert.Equal(t, 62.5, totals.WorkedHours)
	assert.Equal(t, 54.5, totals.PaidHours)
}

func TestPaidHours_NeverNegative(t *testing.T) {
	assert.Equal(t, 0.0, PaidHours(5, 10))
	assert.Equal(t, 0.0, PaidHours(0, 0))
	assert.Equal(t, 70.0, PaidHours(80, 10))
}

func TestCalculation_Recompute(t *testing.T) {
	c := Calculation{
		TotalWorkedHours:  80,
		TotalWeekendHours: 0,
		HourlyRate:        decimal.NewFromInt(25),
		BonusPay:          decimal.NewFromInt(200),
		LoanDeductions:    decimal.Zero,
		OtherDeductions:   decimal.Zero,
	}

	c.Recompute()
	assert.True(t, decimal.NewFromInt(2200).Equal(c.GrossPay), "gross = %s", c.GrossPay)
	assert.True(t, decimal.NewFromInt(2200).Equal(c.NetPay))

	c.LoanDeductions = decimal.NewFromInt(150)
	c.OtherDeductions = decimal.NewFromInt(50)
	c.Recompute()

	assert.True(t, decimal.NewFromInt(2200).Equal(c.GrossPay))
	assert.True(t, decimal.NewFromInt(2000).Equal(c.NetPay), "net = %s", c.NetPay)
}

func TestCalculation_RecomputeTouchesOnlyOneRow(t *testing.T) {
	rows := []Calculation{
		{TotalWorkedHours: 80, HourlyRate: decimal.NewFromInt(25), BonusPay: decimal.Zero, LoanDeductions: decimal.Zero, OtherDeductions: decimal.Zero},
		{TotalWorkedHours: 70, HourlyRate: decimal.NewFromInt(30), BonusPay: decimal.Zero, LoanDeductions: decimal.Zero, OtherDeductions: decimal.Zero},
	}
	for i := range rows {
		rows[i].Recompute()
	}
	secondNetBefore := rows[1].NetPay

	rows[0].BonusPay = decimal.NewFromInt(500)
	rows[0].Recompute()

	assert.True(t, decimal.NewFromInt(2500).Equal(rows[0].GrossPay))
	assert.True(t, secondNetBefore.Equal(rows[1].NetPay))

	// Aggregate totals equal the sum of the current row values.
	totals := Totals(rows)
	assert.True(t, rows[0].NetPay.Add(rows[1].NetPay).Equal(totals.TotalNetPay))
	assert.Equal(t, 2, totals.EmployeeCount)
}

func TestDefaultLoanDeduction(t *testing.T) {
	periodEnd := date(2025, time.July, 1)
	base := EmployeeLoan{
		OutstandingBalance: decimal.NewFromInt(1000),
		MonthlyPayment:     decimal.NewFromInt(150),
		StartDate:          date(2025, time.June, 1),
		Status:             LoanStatusActive,
	}

	assert.True(t, decimal.NewFromInt(150).Equal(DefaultLoanDeduction(base, periodEnd)))

	completed := base
	completed.Status = LoanStatusCompleted
	assert.True(t, DefaultLoanDeduction(completed, periodEnd).IsZero())

	drained := base
	drained.OutstandingBalance = decimal.Zero
	assert.True(t, DefaultLoanDeduction(drained, periodEnd).IsZero())

	future := base
	future.StartDate = date(2025, time.July, 15)
	assert.True(t, DefaultLoanDeduction(future, periodEnd).IsZero())

	// Final instalment is clamped to the remaining balance.
	nearlyPaid := base
	nearlyPaid.OutstandingBalance = decimal.NewFromInt(100)
	assert.True(t, decimal.NewFromInt(100).Equal(DefaultLoanDeduction(nearlyPaid, periodEnd)))
}

func TestApplyLoanPayment_ClampsAtZero(t *testing.T) {
	loan := EmployeeLoan{
		OutstandingBalance: decimal.NewFromInt(100),
		MonthlyPayment:     decimal.NewFromInt(150),
		Status:             LoanStatusActive,
	}

	ApplyLoanPayment(&loan, decimal.NewFromInt(150))

	require.True(t, loan.OutstandingBalance.IsZero(), "balance = %s", loan.OutstandingBalance)
	assert.Equal(t, LoanStatusCompleted, loan.Status)
}

func TestApplyLoanPayment_PartialLeavesActive(t *testing.T) {
	loan := EmployeeLoan{
		OutstandingBalance: decimal.NewFromInt(500),
		MonthlyPayment:     decimal.NewFromInt(150),
		Status:             LoanStatusActive,
	}

	ApplyLoanPayment(&loan, decimal.NewFromInt(150))

	assert.True(t, decimal.NewFromInt(350).Equal(loan.OutstandingBalance))
	assert.Equal(t, LoanStatusActive, loan.Status)
}
