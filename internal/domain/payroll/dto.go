package payroll

import "github.com/shopspring/decimal"

type CreatePeriodRequest struct {
	Name        string `json:"name"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`
	PaymentDate string `json:"payment_date"`
}

type CreateSalaryStructureRequest struct {
	EmployeeID         string          `json:"employee_id"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MealAllowance      decimal.Decimal `json:"meal_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	EffectiveDate      string          `json:"effective_date"`
}

type CreateDeductionTypeRequest struct {
	Name        string  `json:"name"`
	Method      string  `json:"method"` // fixed | percentage
	Description *string `json:"description,omitempty"`
}

type AssignDeductionRequest struct {
	EmployeeID      string          `json:"employee_id"`
	DeductionTypeID string          `json:"deduction_type_id"`
	Amount          decimal.Decimal `json:"amount"`
}

// GenerationResult summarizes one payslip generation run.
type GenerationResult struct {
	PeriodID       string `json:"period_id"`
	PayslipCount   int    `json:"payslip_count"`
	SkippedNoPay   int    `json:"skipped_no_pay"`
	WorkingDays    int    `json:"working_days"`
	GeneratedAtUTC string `json:"generated_at"`
}
