package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	Update(ctx context.Context, req UpdateLeaveTypeRequest) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, int64, error)

	// GetByEmployeeID returns the employee's full request history; the balance
	// accountant recomputes from this on every read.
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ApplyPatch performs the expected-status conditional update and returns
	// ErrRequestStateChanged when zero rows match.
	ApplyPatch(ctx context.Context, patch RequestPatch) error

	Amend(ctx context.Context, id string, startDate, endDate time.Time, daysCount float64, reason string, note *string, amendedAt time.Time) error

	// CheckOverlapping reports whether the employee already has an in-flight
	// or approved request intersecting [startDate, endDate].
	CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)

	// ListApprovedBetween returns every hr_approved request whose range
	// intersects [from, to]; the payroll engine reads these as frozen input.
	ListApprovedBetween(ctx context.Context, from, to time.Time) ([]LeaveRequest, error)

	// ListCalendar returns entries for requests in CalendarVisibleStatuses
	// intersecting [from, to].
	ListCalendar(ctx context.Context, from, to time.Time) ([]CalendarEntry, error)
}

type ApprovalEventRepository interface {
	Append(ctx context.Context, event ApprovalEvent) error
	ListByRequest(ctx context.Context, requestID string) ([]ApprovalEvent, error)
}
