package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type salaryStructureRepositoryImpl struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepositoryImpl{db: db}
}

// Create deactivates the employee's prior structures and inserts the new one
// in a single transaction, keeping the one-active-structure invariant even
// under concurrent writes.
func (r *salaryStructureRepositoryImpl) Create(ctx context.Context, s payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		deactivate := `
			UPDATE salary_structures
			SET is_active = false, updated_at = NOW()
			WHERE employee_id = $1 AND is_active = true
		`
		if _, err := q.Exec(txCtx, deactivate, s.EmployeeID); err != nil {
			return err
		}

		insert := `
			INSERT INTO salary_structures (
				id, employee_id, basic_salary,
				housing_allowance, transport_allowance, meal_allowance, other_allowance,
				effective_date, is_active, created_at, updated_at
			) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`
		return q.QueryRow(txCtx, insert,
			s.EmployeeID, s.BasicSalary,
			s.HousingAllowance, s.TransportAllowance, s.MealAllowance, s.OtherAllowance,
			s.EffectiveDate,
		).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	})
	if err != nil {
		return payroll.SalaryStructure{}, err
	}

	s.IsActive = true
	return s, nil
}

func (r *salaryStructureRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, basic_salary,
			   housing_allowance, transport_allowance, meal_allowance, other_allowance,
			   effective_date, is_active, created_at, updated_at
		FROM salary_structures
		WHERE employee_id = $1 AND is_active = true
	`

	var s payroll.SalaryStructure
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary,
		&s.HousingAllowance, &s.TransportAllowance, &s.MealAllowance, &s.OtherAllowance,
		&s.EffectiveDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryStructure{}, payroll.ErrNoActiveSalaryStructure
		}
		return payroll.SalaryStructure{}, err
	}
	return s, nil
}

func (r *salaryStructureRepositoryImpl) ListActive(ctx context.Context) ([]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, basic_salary,
			   housing_allowance, transport_allowance, meal_allowance, other_allowance,
			   effective_date, is_active, created_at, updated_at
		FROM salary_structures
		WHERE is_active = true
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []payroll.SalaryStructure
	for rows.Next() {
		var s payroll.SalaryStructure
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.BasicSalary,
			&s.HousingAllowance, &s.TransportAllowance, &s.MealAllowance, &s.OtherAllowance,
			&s.EffectiveDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		structures = append(structures, s)
	}
	return structures, rows.Err()
}
