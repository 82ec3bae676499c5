package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePeriodRepo struct {
	periods map[string]payroll.PayrollPeriod
}

func (f *fakePeriodRepo) Create(_ context.Context, p payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	p.ID = "period-" + p.Name
	f.periods[p.ID] = p
	return p, nil
}

func (f *fakePeriodRepo) GetByID(_ context.Context, id string) (payroll.PayrollPeriod, error) {
	p, ok := f.periods[id]
	if !ok {
		return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
	}
	return p, nil
}

func (f *fakePeriodRepo) List(_ context.Context) ([]payroll.PayrollPeriod, error) { return nil, nil }

func (f *fakePeriodRepo) UpdateStatus(_ context.Context, id string, expected, next payroll.PeriodStatus, processedAt *time.Time) error {
	p, ok := f.periods[id]
	if !ok || p.Status != expected {
		return payroll.ErrPeriodNotDraft
	}
	p.Status = next
	p.ProcessedAt = processedAt
	f.periods[id] = p
	return nil
}

type fakePayslipRepo struct {
	slips map[string]payroll.Payslip
}

func (f *fakePayslipRepo) CreateBatch(_ context.Context, slips []payroll.Payslip) error {
	for i, s := range slips {
		s.ID = "slip-" + s.EmployeeID + "-" + string(rune('a'+i))
		f.slips[s.ID] = s
	}
	return nil
}

func (f *fakePayslipRepo) GetByID(_ context.Context, id string) (payroll.Payslip, error) {
	s, ok := f.slips[id]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return s, nil
}

func (f *fakePayslipRepo) ListByPeriod(_ context.Context, periodID string) ([]payroll.Payslip, error) {
	var out []payroll.Payslip
	for _, s := range f.slips {
		if s.PayrollPeriodID == periodID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakePayslipRepo) CountByPeriod(_ context.Context, periodID string) (int64, error) {
	var n int64
	for _, s := range f.slips {
		if s.PayrollPeriodID == periodID {
			n++
		}
	}
	return n, nil
}

func (f *fakePayslipRepo) MarkPaid(_ context.Context, id string, paidAt time.Time) error {
	s := f.slips[id]
	s.Status = payroll.PayslipPaid
	s.PaidAt = &paidAt
	f.slips[id] = s
	return nil
}

func (f *fakePayslipRepo) Cancel(_ context.Context, id string) error {
	s := f.slips[id]
	s.Status = payroll.PayslipCancelled
	f.slips[id] = s
	return nil
}

type fakeSalaryRepo struct {
	structures []payroll.SalaryStructure
}

func (f *fakeSalaryRepo) Create(_ context.Context, s payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	for i := range f.structures {
		if f.structures[i].EmployeeID == s.EmployeeID {
			f.structures[i].IsActive = false
		}
	}
	s.ID = "ss-" + s.EmployeeID
	f.structures = append(f.structures, s)
	return s, nil
}

func (f *fakeSalaryRepo) GetActiveByEmployee(_ context.Context, employeeID string) (payroll.SalaryStructure, error) {
	for _, s := range f.structures {
		if s.EmployeeID == employeeID && s.IsActive {
			return s, nil
		}
	}
	return payroll.SalaryStructure{}, payroll.ErrNoActiveSalaryStructure
}

func (f *fakeSalaryRepo) ListActive(_ context.Context) ([]payroll.SalaryStructure, error) {
	var out []payroll.SalaryStructure
	for _, s := range f.structures {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, Status: employee.StatusActive}, nil
}

func (fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (fakeEmployeeRepo) CountActive(_ context.Context) (int, error)               { return 0, nil }

func newTestPayrollService() (*Service, *fakePeriodRepo, *fakePayslipRepo, *fakeSalaryRepo) {
	periods := &fakePeriodRepo{periods: map[string]payroll.PayrollPeriod{}}
	slips := &fakePayslipRepo{slips: map[string]payroll.Payslip{}}
	salaries := &fakeSalaryRepo{}
	svc := NewService(nil, periods, slips, salaries, nil, nil, nil, fakeEmployeeRepo{})
	return svc, periods, slips, salaries
}

func TestGenerate_RequiresDraftPeriod(t *testing.T) {
	svc, periods, _, _ := newTestPayrollService()
	periods.periods["period-1"] = payroll.PayrollPeriod{ID: "period-1", Status: payroll.PeriodProcessing}

	_, err := svc.Generate(context.Background(), "period-1")
	assert.ErrorIs(t, err, payroll.ErrPeriodNotDraft)
}

func TestGenerate_RejectsSecondRun(t *testing.T) {
	svc, periods, slips, _ := newTestPayrollService()
	periods.periods["period-1"] = payroll.PayrollPeriod{ID: "period-1", Status: payroll.PeriodDraft}
	slips.slips["slip-1"] = payroll.Payslip{ID: "slip-1", PayrollPeriodID: "period-1"}

	_, err := svc.Generate(context.Background(), "period-1")
	assert.ErrorIs(t, err, payroll.ErrPayslipsAlreadyExist)
}

func TestGenerate_AbortsWithoutSalaryStructures(t *testing.T) {
	svc, periods, slips, _ := newTestPayrollService()
	periods.periods["period-1"] = payroll.PayrollPeriod{ID: "period-1", Status: payroll.PeriodDraft}

	_, err := svc.Generate(context.Background(), "period-1")
	assert.ErrorIs(t, err, payroll.ErrNoActiveSalaryStructure)
	assert.Empty(t, slips.slips, "aborted run must leave zero payslips")
}

func TestMarkPayslipPaid(t *testing.T) {
	svc, _, slips, _ := newTestPayrollService()
	slips.slips["slip-1"] = payroll.Payslip{ID: "slip-1", Status: payroll.PayslipPending}

	paid, err := svc.MarkPayslipPaid(context.Background(), "slip-1")
	require.NoError(t, err)
	assert.Equal(t, payroll.PayslipPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	_, err = svc.MarkPayslipPaid(context.Background(), "slip-1")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotPending)
}

func TestCancelPayslip_OnlyPending(t *testing.T) {
	svc, _, slips, _ := newTestPayrollService()
	slips.slips["slip-1"] = payroll.Payslip{ID: "slip-1", Status: payroll.PayslipPaid}

	err := svc.CancelPayslip(context.Background(), "slip-1")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotPending)
}

func TestCreateSalaryStructure_ReplacesActive(t *testing.T) {
	svc, _, _, _ := newTestPayrollService()

	_, err := svc.CreateSalaryStructure(context.Background(), payroll.CreateSalaryStructureRequest{
		EmployeeID: "emp-1", BasicSalary: decimal.NewFromInt(2000), EffectiveDate: "2026-01-01",
	})
	require.NoError(t, err)

	_, err = svc.CreateSalaryStructure(context.Background(), payroll.CreateSalaryStructureRequest{
		EmployeeID: "emp-1", BasicSalary: decimal.NewFromInt(2500), EffectiveDate: "2026-06-01",
	})
	require.NoError(t, err)

	active, err := svc.GetActiveSalaryStructure(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.True(t, active.BasicSalary.Equal(decimal.NewFromInt(2500)), "new structure deactivates its predecessor")
}

func TestCreateDeductionType_RejectsUnknownMethod(t *testing.T) {
	deductions := &fakeDeductionRepo{}
	svc := NewService(nil, nil, nil, nil, deductions, nil, nil, fakeEmployeeRepo{})

	_, err := svc.CreateDeductionType(context.Background(), payroll.CreateDeductionTypeRequest{
		Name: "Mystery", Method: "tiered",
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidDeductionMethod)
}

type fakeDeductionRepo struct {
	assigned []payroll.EmployeeDeduction
}

func (f *fakeDeductionRepo) CreateType(_ context.Context, dt payroll.DeductionType) (payroll.DeductionType, error) {
	dt.ID = "dt-" + dt.Name
	return dt, nil
}

func (f *fakeDeductionRepo) ListTypes(_ context.Context) ([]payroll.DeductionType, error) {
	return nil, nil
}

func (f *fakeDeductionRepo) Assign(_ context.Context, d payroll.EmployeeDeduction) (payroll.EmployeeDeduction, error) {
	d.ID = "ed-" + d.EmployeeID
	f.assigned = append(f.assigned, d)
	return d, nil
}

func (f *fakeDeductionRepo) ListActiveByEmployee(_ context.Context, _ string) ([]payroll.EmployeeDeduction, error) {
	return f.assigned, nil
}

func (f *fakeDeductionRepo) Unassign(_ context.Context, _ string) error { return nil }

type fakeTxStarter struct{}

func (fakeTxStarter) BeginTx(_ context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(_ context.Context) error   { return nil }
func (fakeTx) Rollback(_ context.Context) error { return nil }

type fakeRosterRepo struct {
	active []employee.Employee
}

func (f *fakeRosterRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.active {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeRosterRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeRosterRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

func (f *fakeRosterRepo) CountActive(_ context.Context) (int, error) { return len(f.active), nil }

type fakeAttendanceRepo struct {
	worked map[string]int
}

func (f *fakeAttendanceRepo) CountWorkedDays(_ context.Context, employeeID string, _, _ time.Time) (int, error) {
	return f.worked[employeeID], nil
}

func (f *fakeAttendanceRepo) CountPresentOn(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func (f *fakeAttendanceRepo) CountRecordsBetween(_ context.Context, _, _ time.Time) (int, error) {
	return 0, nil
}

type fakeLeaveHistoryRepo struct {
	approved []leave.LeaveRequest
}

func (f *fakeLeaveHistoryRepo) Create(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	return r, nil
}

func (f *fakeLeaveHistoryRepo) GetByID(_ context.Context, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveHistoryRepo) List(_ context.Context, _ leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveHistoryRepo) GetByEmployeeID(_ context.Context, _ string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveHistoryRepo) ApplyPatch(_ context.Context, _ leave.RequestPatch) error { return nil }

func (f *fakeLeaveHistoryRepo) Amend(_ context.Context, _ string, _, _ time.Time, _ float64, _ string, _ *string, _ time.Time) error {
	return nil
}

func (f *fakeLeaveHistoryRepo) CheckOverlapping(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}

func (f *fakeLeaveHistoryRepo) ListApprovedBetween(_ context.Context, _, _ time.Time) ([]leave.LeaveRequest, error) {
	return f.approved, nil
}

func (f *fakeLeaveHistoryRepo) ListCalendar(_ context.Context, _, _ time.Time) ([]leave.CalendarEntry, error) {
	return nil, nil
}

func TestGenerate_CreatesPayslipsAndFlipsPeriod(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	end := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)   // Friday

	periods := &fakePeriodRepo{periods: map[string]payroll.PayrollPeriod{
		"period-1": {ID: "period-1", Status: payroll.PeriodDraft, StartDate: start, EndDate: end},
	}}
	slips := &fakePayslipRepo{slips: map[string]payroll.Payslip{}}
	salaries := &fakeSalaryRepo{structures: []payroll.SalaryStructure{
		{ID: "ss-1", EmployeeID: "emp-1", BasicSalary: decimal.NewFromInt(3000), TransportAllowance: decimal.NewFromInt(500), IsActive: true},
		{ID: "ss-2", EmployeeID: "emp-gone", BasicSalary: decimal.NewFromInt(2000), IsActive: true},
	}}
	deductions := &fakeDeductionRepo{assigned: []payroll.EmployeeDeduction{
		{EmployeeID: "emp-1", DeductionName: "Pension", DeductionMethod: payroll.DeductionPercentage, Amount: decimal.NewFromInt(10), IsActive: true},
	}}
	attendances := &fakeAttendanceRepo{worked: map[string]int{"emp-1": 3}}
	leaves := &fakeLeaveHistoryRepo{approved: []leave.LeaveRequest{
		{
			EmployeeID: "emp-1",
			Status:     leave.StatusHRApproved,
			StartDate:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		},
	}}
	roster := &fakeRosterRepo{active: []employee.Employee{{ID: "emp-1", Status: employee.StatusActive}}}

	svc := NewService(fakeTxStarter{}, periods, slips, salaries, deductions, attendances, leaves, roster)

	result, err := svc.Generate(context.Background(), "period-1")
	require.NoError(t, err)

	assert.Equal(t, 1, result.PayslipCount)
	assert.Equal(t, 1, result.SkippedNoPay, "structure of an inactive employee is skipped")
	assert.Equal(t, 5, result.WorkingDays)

	generated, err := svc.ListPayslips(context.Background(), "period-1")
	require.NoError(t, err)
	require.Len(t, generated, 1)
	slip := generated[0]
	assert.Equal(t, "emp-1", slip.EmployeeID)
	assert.Equal(t, 3, slip.DaysWorked)
	assert.Equal(t, 2, slip.DaysLeave, "approved leave overlapping the period is paid")
	assert.Equal(t, 0, slip.DaysAbsent)
	assert.Equal(t, payroll.PayslipPending, slip.Status)
	assert.True(t, slip.GrossSalary.Equal(decimal.NewFromInt(3500)), "gross = %s", slip.GrossSalary)
	assert.True(t, slip.NetSalary.Equal(decimal.NewFromInt(3150)), "net = %s", slip.NetSalary)

	period, err := svc.GetPeriod(context.Background(), "period-1")
	require.NoError(t, err)
	assert.Equal(t, payroll.PeriodProcessing, period.Status)
	assert.NotNil(t, period.ProcessedAt)
}
