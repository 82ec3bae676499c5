package postgresql

import (
	"context"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) CountWorkedDays(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND status IN ($4, $5)
	`

	var count int
	err := q.QueryRow(ctx, query, employeeID, from, to, attendance.StatusPresent, attendance.StatusLate).Scan(&count)
	return count, err
}

func (r *attendanceRepositoryImpl) CountPresentOn(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM attendance_records
		WHERE date = $1 AND status IN ($2, $3)
	`

	var count int
	err := q.QueryRow(ctx, query, date, attendance.StatusPresent, attendance.StatusLate).Scan(&count)
	return count, err
}

func (r *attendanceRepositoryImpl) CountRecordsBetween(ctx context.Context, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE date BETWEEN $1 AND $2
		  AND status IN ($3, $4)
	`

	var count int
	err := q.QueryRow(ctx, query, from, to, attendance.StatusPresent, attendance.StatusLate).Scan(&count)
	return count, err
}
