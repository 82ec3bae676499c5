package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type periodRepositoryImpl struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &periodRepositoryImpl{db: db}
}

func (r *periodRepositoryImpl) Create(ctx context.Context, p payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (id, name, start_date, end_date, payment_date, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.Name, p.StartDate, p.EndDate, p.PaymentDate, p.Status).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payroll.PayrollPeriod{}, err
	}
	return p, nil
}

func (r *periodRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, payment_date, status, processed_at, created_at, updated_at
		FROM payroll_periods
		WHERE id = $1
	`

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.PaymentDate,
		&p.Status, &p.ProcessedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, err
	}
	return p, nil
}

func (r *periodRepositoryImpl) List(ctx context.Context) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, payment_date, status, processed_at, created_at, updated_at
		FROM payroll_periods
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		var p payroll.PayrollPeriod
		if err := rows.Scan(
			&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.PaymentDate,
			&p.Status, &p.ProcessedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// UpdateStatus flips the status only while the row still carries expected,
// which serializes racing generation runs on the same period.
func (r *periodRepositoryImpl) UpdateStatus(ctx context.Context, id string, expected, next payroll.PeriodStatus, processedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET status = $1, processed_at = COALESCE($2, processed_at), updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	commandTag, err := q.Exec(ctx, query, next, processedAt, id, expected)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrPeriodNotDraft
	}
	return nil
}
