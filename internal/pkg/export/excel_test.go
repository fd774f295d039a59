package export

import (
	"bytes"
	"testing"

	"github.com/boxline/boxline-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleCalcs() []payroll.Calculation {
	calcs := []payroll.Calculation{
		{
			EmployeeID:        "e1",
			ClockNumber:       "101",
			EmployeeName:      "Alice Munro",
			EmployeeType:      "casual",
			TotalWorkedHours:  88,
			TotalWeekendHours: 8,
			HourlyRate:        decimal.NewFromInt(25),
			BonusPay:          decimal.NewFromInt(200),
			LoanDeductions:    decimal.NewFromInt(150),
			OtherDeductions:   decimal.NewFromInt(50),
		},
		{
			EmployeeID:       "e2",
			ClockNumber:      "102",
			EmployeeName:     "Bob Tran",
			EmployeeType:     "permanent",
			TotalWorkedHours: 80,
			HourlyRate:       decimal.NewFromInt(30),
			BonusPay:         decimal.Zero,
			LoanDeductions:   decimal.Zero,
			OtherDeductions:  decimal.Zero,
		},
	}
	for i := range calcs {
		calcs[i].Recompute()
	}
	return calcs
}

func TestPayrollWorkbook(t *testing.T) {
	period := payroll.PeriodFor(payroll.PeriodEpoch)
	data, err := PayrollWorkbook("Boxline Packaging", period, sampleCalcs())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payroll")
	require.NoError(t, err)

	assert.Equal(t, "Boxline Packaging", rows[0][0])
	assert.Contains(t, rows[1][0], "2025-06-18")
	assert.Contains(t, rows[1][0], "2025-07-01")

	// Row 4 is the column header, then one row per employee, totals,
	// employee count.
	assert.Equal(t, "Clock #", rows[3][0])
	assert.Equal(t, "Alice Munro", rows[4][1])
	assert.Equal(t, "Bob Tran", rows[5][1])
	assert.Equal(t, "TOTAL", rows[6][1])
	assert.Equal(t, "Employees", rows[7][1])
	assert.Equal(t, "2", rows[7][3])
}

func TestPayrollWorkbook_Empty(t *testing.T) {
	period := payroll.PeriodFor(payroll.PeriodEpoch)
	data, err := PayrollWorkbook("Boxline Packaging", period, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestPayrollSummaryPDF(t *testing.T) {
	period := payroll.PeriodFor(payroll.PeriodEpoch)
	data, err := PayrollSummaryPDF("Boxline Packaging", period, sampleCalcs())
	require.NoError(t, err)

	// %PDF magic header
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
