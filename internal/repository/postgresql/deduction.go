package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) payroll.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

func (r *deductionRepositoryImpl) CreateType(ctx context.Context, dt payroll.DeductionType) (payroll.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_types (id, name, method, description, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, dt.Name, dt.Method, dt.Description).Scan(&dt.ID, &dt.CreatedAt)
	if err != nil {
		return payroll.DeductionType{}, err
	}
	return dt, nil
}

func (r *deductionRepositoryImpl) ListTypes(ctx context.Context) ([]payroll.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, method, description, created_at
		FROM deduction_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []payroll.DeductionType
	for rows.Next() {
		var dt payroll.DeductionType
		if err := rows.Scan(&dt.ID, &dt.Name, &dt.Method, &dt.Description, &dt.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, dt)
	}
	return types, rows.Err()
}

func (r *deductionRepositoryImpl) Assign(ctx context.Context, d payroll.EmployeeDeduction) (payroll.EmployeeDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_deductions (id, employee_id, deduction_type_id, amount, is_active)
		SELECT uuidv7(), $1, dt.id, $2, true
		FROM deduction_types dt
		WHERE dt.id = $3
		RETURNING id
	`

	err := q.QueryRow(ctx, query, d.EmployeeID, d.Amount, d.DeductionTypeID).Scan(&d.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.EmployeeDeduction{}, payroll.ErrDeductionTypeNotFound
		}
		return payroll.EmployeeDeduction{}, err
	}
	return d, nil
}

func (r *deductionRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string) ([]payroll.EmployeeDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ed.id, ed.employee_id, ed.deduction_type_id, ed.amount, ed.is_active,
			   dt.name, dt.method
		FROM employee_deductions ed
		JOIN deduction_types dt ON ed.deduction_type_id = dt.id
		WHERE ed.employee_id = $1 AND ed.is_active = true
		ORDER BY dt.name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deductions []payroll.EmployeeDeduction
	for rows.Next() {
		var d payroll.EmployeeDeduction
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.DeductionTypeID, &d.Amount, &d.IsActive,
			&d.DeductionName, &d.DeductionMethod,
		); err != nil {
			return nil, err
		}
		deductions = append(deductions, d)
	}
	return deductions, rows.Err()
}

func (r *deductionRepositoryImpl) Unassign(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employee_deductions SET is_active = false WHERE id = $1`
	_, err := q.Exec(ctx, query, id)
	return err
}
