package postgresql

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

func (r *payslipRepositoryImpl) CreateBatch(ctx context.Context, slips []payroll.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, payroll_period_id, employee_id,
			basic_salary, total_allowances, total_deductions, gross_salary, net_salary,
			working_days, days_worked, days_absent, days_leave,
			allowances_breakdown, deductions_breakdown,
			status, created_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13,
			$14, NOW()
		)
	`

	for _, s := range slips {
		allowances, err := json.Marshal(s.AllowancesBreakdown)
		if err != nil {
			return err
		}
		deductions, err := json.Marshal(s.DeductionsBreakdown)
		if err != nil {
			return err
		}

		if _, err := q.Exec(ctx, query,
			s.PayrollPeriodID, s.EmployeeID,
			s.BasicSalary, s.TotalAllowances, s.TotalDeductions, s.GrossSalary, s.NetSalary,
			s.WorkingDays, s.DaysWorked, s.DaysAbsent, s.DaysLeave,
			allowances, deductions,
			s.Status,
		); err != nil {
			return err
		}
	}
	return nil
}

const payslipColumns = `
	p.id, p.payroll_period_id, p.employee_id,
	p.basic_salary, p.total_allowances, p.total_deductions, p.gross_salary, p.net_salary,
	p.working_days, p.days_worked, p.days_absent, p.days_leave,
	p.allowances_breakdown, p.deductions_breakdown,
	p.status, p.paid_at, p.created_at`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var s payroll.Payslip
	var allowances, deductions []byte
	err := row.Scan(
		&s.ID, &s.PayrollPeriodID, &s.EmployeeID,
		&s.BasicSalary, &s.TotalAllowances, &s.TotalDeductions, &s.GrossSalary, &s.NetSalary,
		&s.WorkingDays, &s.DaysWorked, &s.DaysAbsent, &s.DaysLeave,
		&allowances, &deductions,
		&s.Status, &s.PaidAt, &s.CreatedAt,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}

	s.AllowancesBreakdown = map[string]decimal.Decimal{}
	if err := json.Unmarshal(allowances, &s.AllowancesBreakdown); err != nil {
		return payroll.Payslip{}, err
	}
	s.DeductionsBreakdown = map[string]decimal.Decimal{}
	if err := json.Unmarshal(deductions, &s.DeductionsBreakdown); err != nil {
		return payroll.Payslip{}, err
	}
	return s, nil
}

func (r *payslipRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `, e.full_name
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1
	`

	var s payroll.Payslip
	var allowances, deductions []byte
	var employeeName string
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.PayrollPeriodID, &s.EmployeeID,
		&s.BasicSalary, &s.TotalAllowances, &s.TotalDeductions, &s.GrossSalary, &s.NetSalary,
		&s.WorkingDays, &s.DaysWorked, &s.DaysAbsent, &s.DaysLeave,
		&allowances, &deductions,
		&s.Status, &s.PaidAt, &s.CreatedAt,
		&employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, err
	}

	s.AllowancesBreakdown = map[string]decimal.Decimal{}
	if err := json.Unmarshal(allowances, &s.AllowancesBreakdown); err != nil {
		return payroll.Payslip{}, err
	}
	s.DeductionsBreakdown = map[string]decimal.Decimal{}
	if err := json.Unmarshal(deductions, &s.DeductionsBreakdown); err != nil {
		return payroll.Payslip{}, err
	}
	s.EmployeeName = &employeeName
	return s, nil
}

func (r *payslipRepositoryImpl) ListByPeriod(ctx context.Context, periodID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		WHERE p.payroll_period_id = $1
		ORDER BY p.employee_id
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		s, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		slips = append(slips, s)
	}
	return slips, rows.Err()
}

func (r *payslipRepositoryImpl) CountByPeriod(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payslips WHERE payroll_period_id = $1`, periodID).Scan(&count)
	return count, err
}

func (r *payslipRepositoryImpl) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips SET status = $1, paid_at = $2
		WHERE id = $3 AND status = $4
	`
	commandTag, err := q.Exec(ctx, query, payroll.PayslipPaid, paidAt, id, payroll.PayslipPending)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrPayslipNotPending
	}
	return nil
}

func (r *payslipRepositoryImpl) Cancel(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips SET status = $1
		WHERE id = $2 AND status = $3
	`
	commandTag, err := q.Exec(ctx, query, payroll.PayslipCancelled, id, payroll.PayslipPending)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrPayslipNotPending
	}
	return nil
}
