package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarVisibleStatuses_ApprovedStagesOnly(t *testing.T) {
	assert.ElementsMatch(t, []RequestStatus{
		StatusManagerApproved,
		StatusGMApproved,
		StatusDirectorApproved,
		StatusHRApproved,
	}, CalendarVisibleStatuses)

	assert.NotContains(t, CalendarVisibleStatuses, StatusPending,
		"a request nobody has approved yet must stay off the calendar")
	assert.NotContains(t, CalendarVisibleStatuses, StatusRejected)
	assert.NotContains(t, CalendarVisibleStatuses, StatusCancelled)
}

func TestRequestStatus_Lifecycle(t *testing.T) {
	for _, st := range InFlightStatuses {
		assert.True(t, st.InFlight(), "%s", st)
		assert.False(t, st.Terminal(), "%s", st)
	}
	for _, st := range []RequestStatus{StatusHRApproved, StatusRejected, StatusCancelled} {
		assert.False(t, st.InFlight(), "%s", st)
		assert.True(t, st.Terminal(), "%s", st)
	}
}
