package payroll

import (
	"context"
	"time"
)

type SalaryStructureRepository interface {
	// Create inserts the new structure and deactivates every prior active
	// structure for the employee within the same transaction.
	Create(ctx context.Context, s SalaryStructure) (SalaryStructure, error)
	GetActiveByEmployee(ctx context.Context, employeeID string) (SalaryStructure, error)
	ListActive(ctx context.Context) ([]SalaryStructure, error)
}

type DeductionRepository interface {
	CreateType(ctx context.Context, dt DeductionType) (DeductionType, error)
	ListTypes(ctx context.Context) ([]DeductionType, error)
	Assign(ctx context.Context, d EmployeeDeduction) (EmployeeDeduction, error)
	// ListActiveByEmployee joins the catalog so callers get name and method.
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]EmployeeDeduction, error)
	Unassign(ctx context.Context, id string) error
}

type PeriodRepository interface {
	Create(ctx context.Context, p PayrollPeriod) (PayrollPeriod, error)
	GetByID(ctx context.Context, id string) (PayrollPeriod, error)
	List(ctx context.Context) ([]PayrollPeriod, error)
	// UpdateStatus applies the change only while the row still has expected;
	// zero rows affected maps to ErrPeriodNotDraft.
	UpdateStatus(ctx context.Context, id string, expected, next PeriodStatus, processedAt *time.Time) error
}

type PayslipRepository interface {
	CreateBatch(ctx context.Context, slips []Payslip) error
	GetByID(ctx context.Context, id string) (Payslip, error)
	ListByPeriod(ctx context.Context, periodID string) ([]Payslip, error)
	CountByPeriod(ctx context.Context, periodID string) (int64, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
	Cancel(ctx context.Context, id string) error
}
