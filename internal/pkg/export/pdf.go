package export

import (
	"bytes"
	"fmt"

	"github.com/boxline/boxline-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

// PayrollSummaryPDF renders a one-page-per-run pay summary: company and
// period header, one line per employee, totals at the bottom.
func PayrollSummaryPDF(companyName string, period payroll.PayPeriod, calcs []payroll.Calculation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, companyName)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Pay period: %s to %s",
		period.StartDate.Format("2006-01-02"),
		period.EndDate.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Pay date: %s", period.PayDate.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(18, 7, "Clock #", "B", 0, "L", false, 0, "")
	pdf.CellFormat(52, 7, "Employee", "B", 0, "L", false, 0, "")
	pdf.CellFormat(22, 7, "Paid Hrs", "B", 0, "R", false, 0, "")
	pdf.CellFormat(26, 7, "Gross", "B", 0, "R", false, 0, "")
	pdf.CellFormat(26, 7, "Deductions", "B", 0, "R", false, 0, "")
	pdf.CellFormat(26, 7, "Net", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, c := range calcs {
		deductions := c.LoanDeductions.Add(c.OtherDeductions)
		pdf.CellFormat(18, 6, c.ClockNumber, "", 0, "L", false, 0, "")
		pdf.CellFormat(52, 6, c.EmployeeName, "", 0, "L", false, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%.2f", c.TotalPaidHours), "", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, c.GrossPay.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, deductions.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, c.NetPay.StringFixed(2), "", 1, "R", false, 0, "")
	}

	totals := payroll.Totals(calcs)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, fmt.Sprintf("Employees: %d", totals.EmployeeCount), "T", 0, "L", false, 0, "")
	pdf.CellFormat(22, 7, fmt.Sprintf("%.2f", totals.TotalPaidHours), "T", 0, "R", false, 0, "")
	pdf.CellFormat(26, 7, totals.TotalGrossPay.StringFixed(2), "T", 0, "R", false, 0, "")
	pdf.CellFormat(26, 7, totals.TotalLoans.Add(totals.TotalDeductions).StringFixed(2), "T", 0, "R", false, 0, "")
	pdf.CellFormat(26, 7, totals.TotalNetPay.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
