package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	// CountOnLeave counts distinct employees with an hr_approved leave
	// request covering the date.
	CountOnLeave(ctx context.Context, date time.Time) (int, error)

	// CountPendingLeave counts requests in any in-flight status.
	CountPendingLeave(ctx context.Context) (int, error)
}
