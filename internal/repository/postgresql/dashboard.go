package postgresql

import (
	"context"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/dashboard"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CountOnLeave(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM leave_requests
		WHERE status = $1
		  AND start_date <= $2
		  AND end_date >= $2
	`

	var count int
	err := q.QueryRow(ctx, query, leave.StatusHRApproved, date).Scan(&count)
	return count, err
}

func (r *dashboardRepositoryImpl) CountPendingLeave(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE status = ANY($1)
	`

	var count int
	err := q.QueryRow(ctx, query, leave.InFlightStatuses).Scan(&count)
	return count, err
}
