package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure carries basic pay plus the four fixed allowance lines.
// At most one structure per employee is active at a time; creating a new one
// deactivates its predecessors.
type SalaryStructure struct {
	ID                 string
	EmployeeID         string
	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	MealAllowance      decimal.Decimal
	OtherAllowance     decimal.Decimal
	EffectiveDate      time.Time
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TotalAllowances sums the four allowance lines.
func (s SalaryStructure) TotalAllowances() decimal.Decimal {
	return s.HousingAllowance.
		Add(s.TransportAllowance).
		Add(s.MealAllowance).
		Add(s.OtherAllowance)
}

type DeductionMethod string

const (
	DeductionFixed      DeductionMethod = "fixed"
	DeductionPercentage DeductionMethod = "percentage"
)

// DeductionType is the catalog entry; EmployeeDeduction assigns an amount or
// percentage of it to one employee.
type DeductionType struct {
	ID          string
	Name        string
	Method      DeductionMethod
	Description *string
	CreatedAt   time.Time
}

type EmployeeDeduction struct {
	ID              string
	EmployeeID      string
	DeductionTypeID string
	// Amount is a currency amount for fixed deductions and a percentage of
	// gross (0-100) for percentage deductions.
	Amount   decimal.Decimal
	IsActive bool

	// Joined for calculation and responses
	DeductionName   string
	DeductionMethod DeductionMethod
}

type PeriodStatus string

const (
	PeriodDraft      PeriodStatus = "draft"
	PeriodProcessing PeriodStatus = "processing"
	PeriodCompleted  PeriodStatus = "completed"
	PeriodCancelled  PeriodStatus = "cancelled"
)

type PayrollPeriod struct {
	ID          string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	PaymentDate time.Time
	Status      PeriodStatus
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PayslipStatus string

const (
	PayslipPending   PayslipStatus = "pending"
	PayslipPaid      PayslipStatus = "paid"
	PayslipCancelled PayslipStatus = "cancelled"
)

type Payslip struct {
	ID              string
	PayrollPeriodID string
	EmployeeID      string

	BasicSalary     decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal

	WorkingDays int
	DaysWorked  int
	DaysAbsent  int
	DaysLeave   int

	AllowancesBreakdown map[string]decimal.Decimal
	DeductionsBreakdown map[string]decimal.Decimal

	Status PayslipStatus
	PaidAt *time.Time

	CreatedAt time.Time

	// Joined for responses
	EmployeeName *string
}
