package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays_MondayToSunday(t *testing.T) {
	// 2026-02-02 is a Monday, 2026-02-08 the following Sunday.
	assert.Equal(t, 5, WorkingDays(date(2026, 2, 2), date(2026, 2, 8)))
}

func TestWorkingDays_SingleDay(t *testing.T) {
	assert.Equal(t, 1, WorkingDays(date(2026, 2, 4), date(2026, 2, 4)))
	// Saturday
	assert.Equal(t, 0, WorkingDays(date(2026, 2, 7), date(2026, 2, 7)))
}

func TestWorkingDays_StartAfterEnd(t *testing.T) {
	assert.Equal(t, 0, WorkingDays(date(2026, 2, 8), date(2026, 2, 2)))
}

func TestWorkingDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 2, 2, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 2, 8, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 5, WorkingDays(start, end))
}

func TestOverlapDays(t *testing.T) {
	periodStart := date(2026, 2, 1)
	periodEnd := date(2026, 2, 28)

	// Fully inside the period.
	assert.Equal(t, 3, OverlapDays(periodStart, periodEnd, date(2026, 2, 10), date(2026, 2, 12)))
	// Straddling the period start.
	assert.Equal(t, 2, OverlapDays(periodStart, periodEnd, date(2026, 1, 30), date(2026, 2, 2)))
	// Entirely outside.
	assert.Equal(t, 0, OverlapDays(periodStart, periodEnd, date(2026, 3, 1), date(2026, 3, 3)))
}

func TestOverlapDays_CountsWeekends(t *testing.T) {
	// 2026-02-06 (Fri) through 2026-02-09 (Mon) crosses a full weekend.
	assert.Equal(t, 4, OverlapDays(date(2026, 2, 1), date(2026, 2, 28), date(2026, 2, 6), date(2026, 2, 9)))
}
