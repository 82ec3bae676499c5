package attendance

import (
	"context"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// Record is a read-only input here: the payroll engine and the dashboards
// consume it, nothing in this core writes it.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     Status
}

type Repository interface {
	// CountWorkedDays counts the employee's records in [from, to] whose
	// status is present or late.
	CountWorkedDays(ctx context.Context, employeeID string, from, to time.Time) (int, error)

	// CountPresentOn counts distinct employees present or late on a date.
	CountPresentOn(ctx context.Context, date time.Time) (int, error)

	// CountRecordsBetween counts all present/late records in the range,
	// across employees, for the attendance-rate rollup.
	CountRecordsBetween(ctx context.Context, from, to time.Time) (int, error)
}
