package leave

import (
	"testing"

	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func annualLeave() leave.LeaveType {
	return leave.LeaveType{ID: "lt-annual", Name: "Annual Leave", DaysAllowed: 12}
}

func historyRequest(typeID string, status leave.RequestStatus, days float64) leave.LeaveRequest {
	return leave.LeaveRequest{LeaveTypeID: typeID, Status: status, DaysCount: days}
}

func TestComputeBalance_Buckets(t *testing.T) {
	history := []leave.LeaveRequest{
		historyRequest("lt-annual", leave.StatusHRApproved, 3),
		historyRequest("lt-annual", leave.StatusHRApproved, 2),
		historyRequest("lt-annual", leave.StatusPending, 1),
		historyRequest("lt-annual", leave.StatusManagerApproved, 2),
		historyRequest("lt-annual", leave.StatusGMApproved, 1),
		historyRequest("lt-annual", leave.StatusDirectorApproved, 1),
		historyRequest("lt-annual", leave.StatusRejected, 4),
		historyRequest("lt-annual", leave.StatusCancelled, 5),
		historyRequest("lt-sick", leave.StatusHRApproved, 7),
	}

	b := ComputeBalance(annualLeave(), history)

	assert.Equal(t, 5.0, b.DaysUsed, "only hr_approved counts as used")
	assert.Equal(t, 5.0, b.DaysPending, "every in-flight stage counts as pending")
	assert.Equal(t, 7.0, b.DaysRemaining, "pending days do not reduce remaining")
	assert.False(t, b.Exhausted())
}

func TestComputeBalance_Idempotent(t *testing.T) {
	history := []leave.LeaveRequest{
		historyRequest("lt-annual", leave.StatusHRApproved, 4),
		historyRequest("lt-annual", leave.StatusPending, 2),
	}

	first := ComputeBalance(annualLeave(), history)
	second := ComputeBalance(annualLeave(), history)
	assert.Equal(t, first, second)
}

func TestComputeBalance_NegativeRemaining(t *testing.T) {
	// Entitlement lowered after approvals already consumed more than the new
	// allowance: remaining goes negative rather than clamping.
	lt := annualLeave()
	lt.DaysAllowed = 3

	history := []leave.LeaveRequest{
		historyRequest("lt-annual", leave.StatusHRApproved, 5),
	}

	b := ComputeBalance(lt, history)
	assert.Equal(t, -2.0, b.DaysRemaining)
	assert.True(t, b.Exhausted())
}

func TestComputeBalance_EmptyHistory(t *testing.T) {
	b := ComputeBalance(annualLeave(), nil)
	assert.Equal(t, 0.0, b.DaysUsed)
	assert.Equal(t, 0.0, b.DaysPending)
	assert.Equal(t, 12.0, b.DaysRemaining)
}

func TestComputeBalances_CoversWholeCatalog(t *testing.T) {
	types := []leave.LeaveType{
		annualLeave(),
		{ID: "lt-sick", Name: "Sick Leave", DaysAllowed: 10},
	}
	history := []leave.LeaveRequest{
		historyRequest("lt-annual", leave.StatusHRApproved, 2),
	}

	balances := ComputeBalances(types, history)
	assert.Len(t, balances, 2)
	assert.Equal(t, 2.0, balances[0].DaysUsed)
	assert.Equal(t, 0.0, balances[1].DaysUsed)
	assert.Equal(t, 10.0, balances[1].DaysRemaining)
}
