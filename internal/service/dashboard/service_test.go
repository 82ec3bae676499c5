package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	onLeave int
	pending int
}

func (f fakeDashboardRepo) CountOnLeave(_ context.Context, _ time.Time) (int, error) {
	return f.onLeave, nil
}

func (f fakeDashboardRepo) CountPendingLeave(_ context.Context) (int, error) {
	return f.pending, nil
}

type fakeAttendanceRepo struct {
	presentToday int
	monthRecords int
}

func (f fakeAttendanceRepo) CountWorkedDays(_ context.Context, _ string, _, _ time.Time) (int, error) {
	return 0, nil
}

func (f fakeAttendanceRepo) CountPresentOn(_ context.Context, _ time.Time) (int, error) {
	return f.presentToday, nil
}

func (f fakeAttendanceRepo) CountRecordsBetween(_ context.Context, _, _ time.Time) (int, error) {
	return f.monthRecords, nil
}

type fakeEmployeeRepo struct {
	active int
}

func (f fakeEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f fakeEmployeeRepo) CountActive(_ context.Context) (int, error) { return f.active, nil }

func TestOverview_Counts(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) // Tuesday
	elapsed := dateutil.WorkingDays(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), date)

	svc := NewService(
		fakeDashboardRepo{onLeave: 3, pending: 7},
		fakeAttendanceRepo{presentToday: 40, monthRecords: 50 * elapsed / 2},
		fakeEmployeeRepo{active: 50},
	)

	stats, err := svc.Overview(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, 50, stats.ActiveEmployees)
	assert.Equal(t, 40, stats.PresentToday)
	assert.Equal(t, 3, stats.OnLeaveToday)
	assert.Equal(t, 7, stats.AbsentToday, "absent = active - present - on leave")
	assert.Equal(t, 7, stats.PendingLeaveRequests)
	assert.InDelta(t, 50.0, stats.AttendanceRate, 0.01)
}

func TestOverview_AbsentNeverNegative(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	svc := NewService(
		fakeDashboardRepo{onLeave: 5},
		fakeAttendanceRepo{presentToday: 50},
		fakeEmployeeRepo{active: 50},
	)

	stats, err := svc.Overview(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.AbsentToday)
}

func TestOverview_RateCappedAtHundred(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	svc := NewService(
		fakeDashboardRepo{},
		fakeAttendanceRepo{monthRecords: 10000},
		fakeEmployeeRepo{active: 10},
	)

	stats, err := svc.Overview(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.AttendanceRate)
}

func TestOverview_ZeroHeadcount(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	svc := NewService(fakeDashboardRepo{}, fakeAttendanceRepo{}, fakeEmployeeRepo{})

	stats, err := svc.Overview(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AttendanceRate, "no headcount means no rate, not a division by zero")
}
