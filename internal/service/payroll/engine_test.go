package payroll

import (
	"testing"

	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildPayslip_Proration(t *testing.T) {
	// Basic 3000, 20 working days, 18 worked, no leave: two absent days go
	// unpaid, nothing else moves the number.
	slip := BuildPayslip("period-1", CalculationInput{
		Structure:   payroll.SalaryStructure{EmployeeID: "emp-1", BasicSalary: dec("3000")},
		WorkingDays: 20,
		DaysWorked:  18,
	})

	assert.Equal(t, 2, slip.DaysAbsent)
	assert.True(t, slip.GrossSalary.Equal(dec("2700")), "gross = %s", slip.GrossSalary)
	assert.True(t, slip.NetSalary.Equal(dec("2700")))
	assert.Equal(t, payroll.PayslipPending, slip.Status)
}

func TestBuildPayslip_LeaveDaysArePaid(t *testing.T) {
	slip := BuildPayslip("period-1", CalculationInput{
		Structure:   payroll.SalaryStructure{EmployeeID: "emp-1", BasicSalary: dec("3000")},
		WorkingDays: 20,
		DaysWorked:  15,
		DaysLeave:   5,
	})

	assert.Equal(t, 0, slip.DaysAbsent)
	assert.True(t, slip.GrossSalary.Equal(dec("3000")), "approved leave pays the daily rate")
}

func TestBuildPayslip_AllowancesNotProrated(t *testing.T) {
	slip := BuildPayslip("period-1", CalculationInput{
		Structure: payroll.SalaryStructure{
			EmployeeID:         "emp-1",
			BasicSalary:        dec("2000"),
			HousingAllowance:   dec("300"),
			TransportAllowance: dec("100"),
			MealAllowance:      dec("80"),
			OtherAllowance:     dec("20"),
		},
		WorkingDays: 20,
		DaysWorked:  10,
	})

	assert.True(t, slip.TotalAllowances.Equal(dec("500")))
	// 2000 * 10/20 + 500
	assert.True(t, slip.GrossSalary.Equal(dec("1500")), "gross = %s", slip.GrossSalary)
	assert.True(t, slip.AllowancesBreakdown["housing"].Equal(dec("300")))
}

func TestBuildPayslip_Deductions(t *testing.T) {
	slip := BuildPayslip("period-1", CalculationInput{
		Structure:   payroll.SalaryStructure{EmployeeID: "emp-1", BasicSalary: dec("3000")},
		WorkingDays: 20,
		DaysWorked:  20,
		Deductions: []payroll.EmployeeDeduction{
			{DeductionName: "Pension", DeductionMethod: payroll.DeductionPercentage, Amount: dec("5")},
			{DeductionName: "Parking", DeductionMethod: payroll.DeductionFixed, Amount: dec("40")},
		},
	})

	// 5% of 3000 = 150, plus 40 fixed.
	assert.True(t, slip.TotalDeductions.Equal(dec("190")), "deductions = %s", slip.TotalDeductions)
	assert.True(t, slip.NetSalary.Equal(dec("2810")))
	assert.True(t, slip.DeductionsBreakdown["Pension"].Equal(dec("150")))
	assert.True(t, slip.DeductionsBreakdown["Parking"].Equal(dec("40")))
}

func TestBuildPayslip_ZeroWorkingDays(t *testing.T) {
	slip := BuildPayslip("period-1", CalculationInput{
		Structure:   payroll.SalaryStructure{EmployeeID: "emp-1", BasicSalary: dec("3000")},
		WorkingDays: 0,
	})

	assert.True(t, slip.GrossSalary.IsZero(), "zero working days means a zero daily rate, not a division panic")
	assert.Equal(t, 0, slip.DaysAbsent)
}

func TestBuildPayslip_OverattendanceDoesNotGoNegative(t *testing.T) {
	slip := BuildPayslip("period-1", CalculationInput{
		Structure:   payroll.SalaryStructure{EmployeeID: "emp-1", BasicSalary: dec("2000")},
		WorkingDays: 20,
		DaysWorked:  18,
		DaysLeave:   5,
	})
	assert.Equal(t, 0, slip.DaysAbsent)
}

func TestBuildPayslip_RoundsMoney(t *testing.T) {
	slip := BuildPayslip("period-1", CalculationInput{
		Structure:   payroll.SalaryStructure{EmployeeID: "emp-1", BasicSalary: dec("1000")},
		WorkingDays: 3,
		DaysWorked:  1,
	})
	// 1000/3 rounds to 333.33
	assert.True(t, slip.GrossSalary.Equal(dec("333.33")), "gross = %s", slip.GrossSalary)
}
