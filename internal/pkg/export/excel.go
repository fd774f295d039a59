package export

import (
	"bytes"
	"fmt"

	"github.com/boxline/boxline-backend-go/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const payrollSheet = "Payroll"

var payrollColumns = []string{
	"Clock #", "Employee", "Type", "Worked Hrs", "Weekend Hrs", "Paid Hrs",
	"Rate", "Bonus", "Gross Pay", "Loans", "Other Ded.", "Net Pay",
}

// PayrollWorkbook renders a committed or previewed payroll run as an
// .xlsx: company and period header rows, one row per employee, a totals
// row and an employee-count row. It is purely a formatting pass over the
// already-computed rows.
func PayrollWorkbook(companyName string, period payroll.PayPeriod, calcs []payroll.Calculation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(payrollSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	setRow := func(row int, values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(payrollSheet, cell, &values)
	}

	// Header block
	if err := setRow(1, []interface{}{companyName}); err != nil {
		return nil, err
	}
	periodLabel := fmt.Sprintf("Pay period %s to %s (pay date %s)",
		period.StartDate.Format("2006-01-02"),
		period.EndDate.Format("2006-01-02"),
		period.PayDate.Format("2006-01-02"),
	)
	if err := setRow(2, []interface{}{periodLabel}); err != nil {
		return nil, err
	}

	headerValues := make([]interface{}, len(payrollColumns))
	for i, c := range payrollColumns {
		headerValues[i] = c
	}
	if err := setRow(4, headerValues); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(payrollSheet, "A1", "A2", bold); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(payrollColumns))
	if err := f.SetCellStyle(payrollSheet, "A4", lastCol+"4", bold); err != nil {
		return nil, err
	}

	// Data rows
	row := 5
	for _, c := range calcs {
		values := []interface{}{
			c.ClockNumber,
			c.EmployeeName,
			c.EmployeeType,
			c.TotalWorkedHours,
			c.TotalWeekendHours,
			c.TotalPaidHours,
			c.HourlyRate.InexactFloat64(),
			c.BonusPay.InexactFloat64(),
			c.GrossPay.InexactFloat64(),
			c.LoanDeductions.InexactFloat64(),
			c.OtherDeductions.InexactFloat64(),
			c.NetPay.InexactFloat64(),
		}
		if err := setRow(row, values); err != nil {
			return nil, err
		}
		row++
	}

	// Totals and employee count
	totals := payroll.Totals(calcs)
	totalsValues := []interface{}{
		"", "TOTAL", "",
		totals.TotalWorkedHours,
		totals.TotalWeekendHours,
		totals.TotalPaidHours,
		"",
		"",
		totals.TotalGrossPay.InexactFloat64(),
		totals.TotalLoans.InexactFloat64(),
		totals.TotalDeductions.InexactFloat64(),
		totals.TotalNetPay.InexactFloat64(),
	}
	if err := setRow(row, totalsValues); err != nil {
		return nil, err
	}
	totalsCell, _ := excelize.CoordinatesToCellName(1, row)
	endCell, _ := excelize.CoordinatesToCellName(len(payrollColumns), row)
	if err := f.SetCellStyle(payrollSheet, totalsCell, endCell, bold); err != nil {
		return nil, err
	}
	row++

	if err := setRow(row, []interface{}{"", "Employees", "", totals.EmployeeCount}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
