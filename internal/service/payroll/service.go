package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/pkg/dateutil"
	"github.com/peoplecore/hr-backend-go/internal/repository/postgresql"
)

type Service struct {
	db          postgresql.TxStarter
	periods     payroll.PeriodRepository
	payslips    payroll.PayslipRepository
	salaries    payroll.SalaryStructureRepository
	deductions  payroll.DeductionRepository
	attendances attendance.Repository
	leaves      leave.LeaveRequestRepository
	employees   employee.Repository
}

func NewService(
	db postgresql.TxStarter,
	periodRepository payroll.PeriodRepository,
	payslipRepository payroll.PayslipRepository,
	salaryStructureRepository payroll.SalaryStructureRepository,
	deductionRepository payroll.DeductionRepository,
	attendanceRepository attendance.Repository,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.Repository,
) *Service {
	return &Service{
		db:          db,
		periods:     periodRepository,
		payslips:    payslipRepository,
		salaries:    salaryStructureRepository,
		deductions:  deductionRepository,
		attendances: attendanceRepository,
		leaves:      leaveRequestRepository,
		employees:   employeeRepository,
	}
}

// Generate runs the payslip engine for a draft period: one pending payslip per
// active employee with an active salary structure. The batch insert and the
// draft -> processing flip land in one transaction, and the draft precondition
// on the status update keeps a second concurrent run from doubling the batch.
func (s *Service) Generate(ctx context.Context, periodID string) (payroll.GenerationResult, error) {
	period, err := s.periods.GetByID(ctx, periodID)
	if err != nil {
		return payroll.GenerationResult{}, fmt.Errorf("failed to get payroll period: %w", err)
	}
	if period.Status != payroll.PeriodDraft {
		return payroll.GenerationResult{}, payroll.ErrPeriodNotDraft
	}

	existing, err := s.payslips.CountByPeriod(ctx, periodID)
	if err != nil {
		return payroll.GenerationResult{}, fmt.Errorf("failed to count existing payslips: %w", err)
	}
	if existing > 0 {
		return payroll.GenerationResult{}, payroll.ErrPayslipsAlreadyExist
	}

	structures, err := s.salaries.ListActive(ctx)
	if err != nil {
		return payroll.GenerationResult{}, fmt.Errorf("failed to list active salary structures: %w", err)
	}
	if len(structures) == 0 {
		return payroll.GenerationResult{}, payroll.ErrNoActiveSalaryStructure
	}

	activeEmployees, err := s.employees.ListActive(ctx)
	if err != nil {
		return payroll.GenerationResult{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	activeByID := make(map[string]bool, len(activeEmployees))
	for _, emp := range activeEmployees {
		activeByID[emp.ID] = true
	}

	leaveDays, err := s.leaveDaysByEmployee(ctx, period)
	if err != nil {
		return payroll.GenerationResult{}, err
	}

	workingDays := dateutil.WorkingDays(period.StartDate, period.EndDate)

	var slips []payroll.Payslip
	skipped := 0
	for _, structure := range structures {
		if !activeByID[structure.EmployeeID] {
			skipped++
			continue
		}

		daysWorked, err := s.attendances.CountWorkedDays(ctx, structure.EmployeeID, period.StartDate, period.EndDate)
		if err != nil {
			return payroll.GenerationResult{}, fmt.Errorf("failed to count worked days: %w", err)
		}
		empDeductions, err := s.deductions.ListActiveByEmployee(ctx, structure.EmployeeID)
		if err != nil {
			return payroll.GenerationResult{}, fmt.Errorf("failed to list employee deductions: %w", err)
		}

		slips = append(slips, BuildPayslip(periodID, CalculationInput{
			Structure:   structure,
			Deductions:  empDeductions,
			WorkingDays: workingDays,
			DaysWorked:  daysWorked,
			DaysLeave:   leaveDays[structure.EmployeeID],
		}))
	}

	processedAt := time.Now()
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.payslips.CreateBatch(txCtx, slips); err != nil {
			return fmt.Errorf("failed to insert payslips: %w", err)
		}
		return s.periods.UpdateStatus(txCtx, periodID, payroll.PeriodDraft, payroll.PeriodProcessing, &processedAt)
	})
	if err != nil {
		return payroll.GenerationResult{}, err
	}

	return payroll.GenerationResult{
		PeriodID:       periodID,
		PayslipCount:   len(slips),
		SkippedNoPay:   skipped,
		WorkingDays:    workingDays,
		GeneratedAtUTC: processedAt.UTC().Format(time.RFC3339),
	}, nil
}

// leaveDaysByEmployee sums, per employee, the overlap between the period and
// every hr_approved leave request intersecting it.
func (s *Service) leaveDaysByEmployee(ctx context.Context, period payroll.PayrollPeriod) (map[string]int, error) {
	approved, err := s.leaves.ListApprovedBetween(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	days := make(map[string]int, len(approved))
	for _, req := range approved {
		days[req.EmployeeID] += dateutil.OverlapDays(period.StartDate, period.EndDate, req.StartDate, req.EndDate)
	}
	return days, nil
}

func (s *Service) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PayrollPeriod, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to parse payment date: %w", err)
	}
	if endDate.Before(startDate) {
		return payroll.PayrollPeriod{}, leave.ErrInvalidDateRange
	}

	return s.periods.Create(ctx, payroll.PayrollPeriod{
		Name:        req.Name,
		StartDate:   startDate,
		EndDate:     endDate,
		PaymentDate: paymentDate,
		Status:      payroll.PeriodDraft,
	})
}

func (s *Service) GetPeriod(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	return s.periods.GetByID(ctx, id)
}

func (s *Service) ListPeriods(ctx context.Context) ([]payroll.PayrollPeriod, error) {
	return s.periods.List(ctx)
}

// CompletePeriod closes a processing period after every payment went out.
func (s *Service) CompletePeriod(ctx context.Context, id string) error {
	return s.periods.UpdateStatus(ctx, id, payroll.PeriodProcessing, payroll.PeriodCompleted, nil)
}

func (s *Service) CancelPeriod(ctx context.Context, id string) error {
	period, err := s.periods.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get payroll period: %w", err)
	}
	return s.periods.UpdateStatus(ctx, id, period.Status, payroll.PeriodCancelled, nil)
}

func (s *Service) ListPayslips(ctx context.Context, periodID string) ([]payroll.Payslip, error) {
	if _, err := s.periods.GetByID(ctx, periodID); err != nil {
		return nil, err
	}
	return s.payslips.ListByPeriod(ctx, periodID)
}

func (s *Service) GetPayslip(ctx context.Context, id string) (payroll.Payslip, error) {
	return s.payslips.GetByID(ctx, id)
}

func (s *Service) MarkPayslipPaid(ctx context.Context, id string) (payroll.Payslip, error) {
	slip, err := s.payslips.GetByID(ctx, id)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if slip.Status != payroll.PayslipPending {
		return payroll.Payslip{}, payroll.ErrPayslipNotPending
	}
	if err := s.payslips.MarkPaid(ctx, id, time.Now()); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to mark payslip paid: %w", err)
	}
	return s.payslips.GetByID(ctx, id)
}

func (s *Service) CancelPayslip(ctx context.Context, id string) error {
	slip, err := s.payslips.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slip.Status != payroll.PayslipPending {
		return payroll.ErrPayslipNotPending
	}
	return s.payslips.Cancel(ctx, id)
}

func (s *Service) CreateSalaryStructure(ctx context.Context, req payroll.CreateSalaryStructureRequest) (payroll.SalaryStructure, error) {
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.SalaryStructure{}, err
	}
	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to parse effective date: %w", err)
	}

	return s.salaries.Create(ctx, payroll.SalaryStructure{
		EmployeeID:         req.EmployeeID,
		BasicSalary:        req.BasicSalary,
		HousingAllowance:   req.HousingAllowance,
		TransportAllowance: req.TransportAllowance,
		MealAllowance:      req.MealAllowance,
		OtherAllowance:     req.OtherAllowance,
		EffectiveDate:      effectiveDate,
		IsActive:           true,
	})
}

func (s *Service) GetActiveSalaryStructure(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	return s.salaries.GetActiveByEmployee(ctx, employeeID)
}

func (s *Service) CreateDeductionType(ctx context.Context, req payroll.CreateDeductionTypeRequest) (payroll.DeductionType, error) {
	method := payroll.DeductionMethod(req.Method)
	if method != payroll.DeductionFixed && method != payroll.DeductionPercentage {
		return payroll.DeductionType{}, payroll.ErrInvalidDeductionMethod
	}
	return s.deductions.CreateType(ctx, payroll.DeductionType{
		Name:        req.Name,
		Method:      method,
		Description: req.Description,
	})
}

func (s *Service) ListDeductionTypes(ctx context.Context) ([]payroll.DeductionType, error) {
	return s.deductions.ListTypes(ctx)
}

func (s *Service) AssignDeduction(ctx context.Context, req payroll.AssignDeductionRequest) (payroll.EmployeeDeduction, error) {
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.EmployeeDeduction{}, err
	}
	return s.deductions.Assign(ctx, payroll.EmployeeDeduction{
		EmployeeID:      req.EmployeeID,
		DeductionTypeID: req.DeductionTypeID,
		Amount:          req.Amount,
		IsActive:        true,
	})
}

func (s *Service) UnassignDeduction(ctx context.Context, id string) error {
	return s.deductions.Unassign(ctx, id)
}
