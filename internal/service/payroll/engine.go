package payroll

import (
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculationInput is one employee's frozen payroll input: the active salary
// structure, the assigned deductions, and the day counts already reconciled
// against the period.
type CalculationInput struct {
	Structure   payroll.SalaryStructure
	Deductions  []payroll.EmployeeDeduction
	WorkingDays int
	DaysWorked  int
	DaysLeave   int
}

// BuildPayslip turns one employee's input into a pending payslip. Absent days
// are unpaid; approved leave days are paid at the daily rate; allowances are
// never prorated. Pure and deterministic.
func BuildPayslip(periodID string, in CalculationInput) payroll.Payslip {
	daysAbsent := in.WorkingDays - in.DaysWorked - in.DaysLeave
	if daysAbsent < 0 {
		daysAbsent = 0
	}

	dailyRate := decimal.Zero
	if in.WorkingDays > 0 {
		dailyRate = in.Structure.BasicSalary.Div(decimal.NewFromInt(int64(in.WorkingDays)))
	}
	payableDays := decimal.NewFromInt(int64(in.DaysWorked + in.DaysLeave))
	proratedBasic := dailyRate.Mul(payableDays)

	totalAllowances := in.Structure.TotalAllowances()
	grossSalary := proratedBasic.Add(totalAllowances).Round(2)

	totalDeductions := decimal.Zero
	deductionsBreakdown := make(map[string]decimal.Decimal, len(in.Deductions))
	for _, d := range in.Deductions {
		amount := d.Amount
		if d.DeductionMethod == payroll.DeductionPercentage {
			amount = grossSalary.Mul(d.Amount).Div(hundred)
		}
		amount = amount.Round(2)
		deductionsBreakdown[d.DeductionName] = deductionsBreakdown[d.DeductionName].Add(amount)
		totalDeductions = totalDeductions.Add(amount)
	}

	return payroll.Payslip{
		PayrollPeriodID: periodID,
		EmployeeID:      in.Structure.EmployeeID,
		BasicSalary:     in.Structure.BasicSalary,
		TotalAllowances: totalAllowances,
		TotalDeductions: totalDeductions,
		GrossSalary:     grossSalary,
		NetSalary:       grossSalary.Sub(totalDeductions),
		WorkingDays:     in.WorkingDays,
		DaysWorked:      in.DaysWorked,
		DaysAbsent:      daysAbsent,
		DaysLeave:       in.DaysLeave,
		AllowancesBreakdown: map[string]decimal.Decimal{
			"housing":   in.Structure.HousingAllowance,
			"transport": in.Structure.TransportAllowance,
			"meal":      in.Structure.MealAllowance,
			"other":     in.Structure.OtherAllowance,
		},
		DeductionsBreakdown: deductionsBreakdown,
		Status:              payroll.PayslipPending,
	}
}
