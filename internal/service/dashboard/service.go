package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/domain/dashboard"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/pkg/dateutil"
)

type Service struct {
	dashboard.Repository
	attendances attendance.Repository
	employees   employee.Repository
}

func NewService(
	dashboardRepository dashboard.Repository,
	attendanceRepository attendance.Repository,
	employeeRepository employee.Repository,
) *Service {
	return &Service{
		Repository:  dashboardRepository,
		attendances: attendanceRepository,
		employees:   employeeRepository,
	}
}

// Overview assembles the executive rollup for one day. Every count is
// recomputed from the store; nothing here is cached.
func (s *Service) Overview(ctx context.Context, date time.Time) (dashboard.OverviewStats, error) {
	active, err := s.employees.CountActive(ctx)
	if err != nil {
		return dashboard.OverviewStats{}, fmt.Errorf("failed to count active employees: %w", err)
	}
	present, err := s.attendances.CountPresentOn(ctx, date)
	if err != nil {
		return dashboard.OverviewStats{}, fmt.Errorf("failed to count present employees: %w", err)
	}
	onLeave, err := s.Repository.CountOnLeave(ctx, date)
	if err != nil {
		return dashboard.OverviewStats{}, fmt.Errorf("failed to count employees on leave: %w", err)
	}
	pending, err := s.Repository.CountPendingLeave(ctx)
	if err != nil {
		return dashboard.OverviewStats{}, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	absent := active - present - onLeave
	if absent < 0 {
		absent = 0
	}

	rate, err := s.attendanceRate(ctx, active, date)
	if err != nil {
		return dashboard.OverviewStats{}, err
	}

	return dashboard.OverviewStats{
		ActiveEmployees:      active,
		PresentToday:         present,
		OnLeaveToday:         onLeave,
		AbsentToday:          absent,
		PendingLeaveRequests: pending,
		AttendanceRate:       rate,
	}, nil
}

// attendanceRate is month-to-date: present/late records over the business days
// elapsed since the first of the month, across the active headcount.
func (s *Service) attendanceRate(ctx context.Context, activeEmployees int, date time.Time) (float64, error) {
	monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	expected := activeEmployees * dateutil.WorkingDays(monthStart, date)
	if expected == 0 {
		return 0, nil
	}

	records, err := s.attendances.CountRecordsBetween(ctx, monthStart, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	rate := float64(records) / float64(expected) * 100
	if rate > 100 {
		rate = 100
	}
	return rate, nil
}
