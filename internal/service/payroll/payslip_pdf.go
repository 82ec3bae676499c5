package payroll

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// RenderPayslipPDF builds a one-page payslip document for download. The slip
// is rendered as stored; nothing is recalculated here.
func (s *Service) RenderPayslipPDF(ctx context.Context, payslipID string) ([]byte, error) {
	slip, err := s.payslips.GetByID(ctx, payslipID)
	if err != nil {
		return nil, err
	}
	period, err := s.periods.GetByID(ctx, slip.PayrollPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll period: %w", err)
	}
	emp, err := s.employees.GetByID(ctx, slip.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", emp.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s (%s to %s)",
		period.Name,
		period.StartDate.Format("2006-01-02"),
		period.EndDate.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Working days: %d  Worked: %d  Leave: %d  Absent: %d",
		slip.WorkingDays, slip.DaysWorked, slip.DaysLeave, slip.DaysAbsent))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %s", slip.BasicSalary.StringFixed(2)))
	pdf.Ln(7)
	for _, name := range sortedKeys(slip.AllowancesBreakdown) {
		amount := slip.AllowancesBreakdown[name]
		if amount.IsZero() {
			continue
		}
		pdf.Cell(0, 8, fmt.Sprintf("Allowance (%s): %s", name, amount.StringFixed(2)))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %s", slip.GrossSalary.StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, name := range sortedKeys(slip.DeductionsBreakdown) {
		pdf.Cell(0, 8, fmt.Sprintf("%s: %s", name, slip.DeductionsBreakdown[name].StringFixed(2)))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %s", slip.TotalDeductions.StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s", slip.NetSalary.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
