package payroll

import "errors"

var (
	ErrPeriodNotFound  = errors.New("Payroll period not found")
	ErrPayslipNotFound = errors.New("Payslip not found")

	// ErrNoActiveSalaryStructure aborts generation with zero side effects
	// instead of silently producing an empty run.
	ErrNoActiveSalaryStructure = errors.New("No active salary structures configured")

	ErrPeriodNotDraft         = errors.New("Payroll period is not in draft status")
	ErrPayslipsAlreadyExist   = errors.New("Payslips already generated for this period")
	ErrPayslipNotPending      = errors.New("Payslip is not pending")
	ErrDeductionTypeNotFound  = errors.New("Deduction type not found")
	ErrInvalidDeductionMethod = errors.New("Deduction method must be fixed or percentage")
)
