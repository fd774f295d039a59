package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayHours is one day's attendance for one employee.
type DayHours struct {
	Date      time.Time
	Hours     float64
	IsWeekend bool
}

// HoursTotals is the aggregated attendance for one employee over a
// period.
type HoursTotals struct {
	WorkedHours  float64
	WeekendHours float64
	PaidHours    float64
}

// FloorToMinimum applies the minimum-guaranteed-hours rule to a single
// day: a recorded shift shorter than the guaranteed shift length is paid
// at the guaranteed length. Longer shifts pass through untouched.
func FloorToMinimum(recorded, minimum float64) float64 {
	if recorded < minimum {
		return minimum
	}
	return recorded
}

// AggregateHours sums an employee's day rows for a period, flooring each
// day to the minimum shift length. Weekday and weekend days are floored
// independently; weekend hours stay inside WorkedHours and are carried
// separately so the pay step can exclude them from regular pay.
func AggregateHours(days []DayHours, minimumShiftHours float64) HoursTotals {
	var totals HoursTotals
	for _, d := range days {
		h := FloorToMinimum(d.Hours, minimumShiftHours)
		totals.WorkedHours += h
		if d.IsWeekend {
			totals.WeekendHours += h
		}
	}
	totals.PaidHours = PaidHours(totals.WorkedHours, totals.WeekendHours)
	return totals
}

// HoursFromTotals builds totals from pre-aggregated figures when no
// per-day breakdown is available. The minimum-shift floor is not applied
// here: a stored aggregate is trusted as already settled upstream.
func HoursFromTotals(workedHours, weekendHours float64) HoursTotals {
	return HoursTotals{
		WorkedHours:  workedHours,
		WeekendHours: weekendHours,
		PaidHours:    PaidHours(workedHours, weekendHours),
	}
}

// PaidHours is the regular payable portion of worked hours. Weekend
// hours are tracked but paid through a separate channel, so they are
// subtracted; the result never goes negative.
func PaidHours(workedHours, weekendHours float64) float64 {
	paid := workedHours - weekendHours
	if paid < 0 {
		return 0
	}
	return paid
}

// Recompute derives GrossPay and NetPay from the calculation's current
// hours, rate, bonus and deductions. Editing one employee's bonus or
// deductions recomputes only that row.
func (c *Calculation) Recompute() {
	c.TotalPaidHours = PaidHours(c.TotalWorkedHours, c.TotalWeekendHours)
	c.GrossPay = decimal.NewFromFloat(c.TotalPaidHours).Mul(c.HourlyRate).Add(c.BonusPay)
	c.NetPay = c.GrossPay.Sub(c.LoanDeductions).Sub(c.OtherDeductions)
}

// DefaultLoanDeduction returns the instalment a loan contributes to a
// pay run. Only active loans with a remaining balance that started on or
// before the period end contribute. The final instalment is clamped to
// the remaining balance so a loan can never be overcharged.
func DefaultLoanDeduction(loan EmployeeLoan, periodEnd time.Time) decimal.Decimal {
	if loan.Status != LoanStatusActive {
		return decimal.Zero
	}
	if !loan.OutstandingBalance.IsPositive() {
		return decimal.Zero
	}
	if loan.StartDate.After(periodEnd) {
		return decimal.Zero
	}
	if loan.OutstandingBalance.LessThan(loan.MonthlyPayment) {
		return loan.OutstandingBalance
	}
	return loan.MonthlyPayment
}

// ApplyLoanPayment decrements a loan's balance by the instalment,
// clamping at zero and completing the loan when it is paid off.
func ApplyLoanPayment(loan *EmployeeLoan, amount decimal.Decimal) {
	loan.OutstandingBalance = loan.OutstandingBalance.Sub(amount)
	if !loan.OutstandingBalance.IsPositive() {
		loan.OutstandingBalance = decimal.Zero
		loan.Status = LoanStatusCompleted
	}
}

// Totals sums a set of calculations into the frozen period snapshot
// fields.
func Totals(calcs []Calculation) PayrollPeriod {
	var p PayrollPeriod
	p.EmployeeCount = len(calcs)
	p.TotalGrossPay = decimal.Zero
	p.TotalLoans = decimal.Zero
	p.TotalDeductions = decimal.Zero
	p.TotalNetPay = decimal.Zero
	for _, c := range calcs {
		p.TotalWorkedHours += c.TotalWorkedHours
		p.TotalWeekendHours += c.TotalWeekendHours
		p.TotalPaidHours += c.TotalPaidHours
		p.TotalGrossPay = p.TotalGrossPay.Add(c.GrossPay)
		p.TotalLoans = p.TotalLoans.Add(c.LoanDeductions)
		p.TotalDeductions = p.TotalDeductions.Add(c.OtherDeductions)
		p.TotalNetPay = p.TotalNetPay.Add(c.NetPay)
	}
	return p
}
