package leave

import (
	"testing"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/identity"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 16, 9, 30, 0, 0, time.UTC)

func transitionInput(action Action, role identity.Role, status leave.RequestStatus, requester identity.Role) TransitionInput {
	return TransitionInput{
		RequestID:     "req-1",
		Action:        action,
		ApproverID:    "approver-1",
		ApproverRole:  role,
		CurrentStatus: status,
		RequesterRole: requester,
		Now:           testNow,
	}
}

func TestTransition_ManagerApprovesPending(t *testing.T) {
	patch, err := Transition(transitionInput(ActionApprove, identity.RoleManager, leave.StatusPending, identity.RoleEmployee))
	require.NoError(t, err)

	require.NotNil(t, patch.Status)
	assert.Equal(t, leave.StatusManagerApproved, *patch.Status)
	require.NotNil(t, patch.ManagerApprovedBy)
	assert.Equal(t, "approver-1", *patch.ManagerApprovedBy)
	require.NotNil(t, patch.ManagerApprovedAt)
	assert.Equal(t, testNow, *patch.ManagerApprovedAt)
	assert.Equal(t, leave.StatusPending, patch.ExpectedStatus)
	assert.Nil(t, patch.HRNotifiedAt)
}

func TestTransition_GMApprovesManagerRequest(t *testing.T) {
	// A manager's own request sits at pending until the GM picks it up.
	patch, err := Transition(transitionInput(ActionApprove, identity.RoleGeneralManager, leave.StatusPending, identity.RoleManager))
	require.NoError(t, err)

	require.NotNil(t, patch.Status)
	assert.Equal(t, leave.StatusGMApproved, *patch.Status)
	assert.NotNil(t, patch.GMApprovedBy)
	assert.NotNil(t, patch.HRNotifiedAt, "HR should be notified for a manager's request")
}

func TestTransition_GMCannotApprovePendingEmployeeRequest(t *testing.T) {
	_, err := Transition(transitionInput(ActionApprove, identity.RoleGeneralManager, leave.StatusPending, identity.RoleEmployee))
	assert.ErrorIs(t, err, leave.ErrIllegalTransition)
}

func TestTransition_GMOwnRequestSkipsHRNotification(t *testing.T) {
	// The GM's own leave must still pass the director before HR hears of it.
	patch, err := Transition(transitionInput(ActionApprove, identity.RoleGeneralManager, leave.StatusPending, identity.RoleGeneralManager))
	require.NoError(t, err)

	require.NotNil(t, patch.Status)
	assert.Equal(t, leave.StatusGMApproved, *patch.Status)
	assert.Nil(t, patch.HRNotifiedAt)
}

func TestTransition_GMApprovesManagerApproved_NotifiesHR(t *testing.T) {
	patch, err := Transition(transitionInput(ActionApprove, identity.RoleGeneralManager, leave.StatusManagerApproved, identity.RoleEmployee))
	require.NoError(t, err)
	assert.NotNil(t, patch.HRNotifiedAt)
}

func TestTransition_DirectorApprovesGMApproved(t *testing.T) {
	patch, err := Transition(transitionInput(ActionApprove, identity.RoleDirector, leave.StatusGMApproved, identity.RoleGeneralManager))
	require.NoError(t, err)

	require.NotNil(t, patch.Status)
	assert.Equal(t, leave.StatusDirectorApproved, *patch.Status)
	assert.NotNil(t, patch.DirectorApprovedBy)
	assert.NotNil(t, patch.HRNotifiedAt)
}

func TestTransition_DirectorCannotActElsewhere(t *testing.T) {
	for _, status := range []leave.RequestStatus{
		leave.StatusPending,
		leave.StatusManagerApproved,
		leave.StatusDirectorApproved,
		leave.StatusHRApproved,
		leave.StatusRejected,
	} {
		_, err := Transition(transitionInput(ActionApprove, identity.RoleDirector, status, identity.RoleEmployee))
		assert.ErrorIs(t, err, leave.ErrIllegalTransition, "status %s", status)
	}
}

func TestTransition_HRApprovesAnyInFlightStage(t *testing.T) {
	for _, role := range []identity.Role{identity.RoleHR, identity.RoleAdmin} {
		for _, status := range leave.InFlightStatuses {
			patch, err := Transition(transitionInput(ActionApprove, role, status, identity.RoleEmployee))
			require.NoError(t, err, "role %s status %s", role, status)
			require.NotNil(t, patch.Status)
			assert.Equal(t, leave.StatusHRApproved, *patch.Status)
			assert.NotNil(t, patch.HRApprovedBy)
			assert.NotNil(t, patch.HRApprovedAt)
		}
	}
}

func TestTransition_TerminalStatesRefuseEveryone(t *testing.T) {
	roles := []identity.Role{
		identity.RoleManager, identity.RoleGeneralManager,
		identity.RoleDirector, identity.RoleHR, identity.RoleAdmin, identity.RoleEmployee,
	}
	for _, role := range roles {
		for _, status := range []leave.RequestStatus{leave.StatusHRApproved, leave.StatusRejected, leave.StatusCancelled} {
			_, err := Transition(transitionInput(ActionApprove, role, status, identity.RoleEmployee))
			assert.ErrorIs(t, err, leave.ErrIllegalTransition, "role %s status %s", role, status)
		}
	}
}

func TestTransition_EmployeeNeverActs(t *testing.T) {
	_, err := Transition(transitionInput(ActionApprove, identity.RoleEmployee, leave.StatusPending, identity.RoleEmployee))
	assert.ErrorIs(t, err, leave.ErrIllegalTransition)
}

func TestTransition_Reject(t *testing.T) {
	reason := "Coverage gap during release week"
	in := transitionInput(ActionReject, identity.RoleManager, leave.StatusPending, identity.RoleEmployee)
	in.RejectionReason = &reason

	patch, err := Transition(in)
	require.NoError(t, err)

	require.NotNil(t, patch.Status)
	assert.Equal(t, leave.StatusRejected, *patch.Status)
	require.NotNil(t, patch.RejectedBy)
	assert.Equal(t, "approver-1", *patch.RejectedBy)
	require.NotNil(t, patch.RejectionReason)
	assert.Equal(t, reason, *patch.RejectionReason)
	require.NotNil(t, patch.DocumentRequired)
	assert.False(t, *patch.DocumentRequired, "rejection clears the document demand")
	assert.Equal(t, leave.DecisionRejected, patch.Event.Decision)
}

func TestTransition_RejectRespectsGating(t *testing.T) {
	_, err := Transition(transitionInput(ActionReject, identity.RoleManager, leave.StatusGMApproved, identity.RoleEmployee))
	assert.ErrorIs(t, err, leave.ErrIllegalTransition)
}

func TestTransition_RequestDocument(t *testing.T) {
	comment := "Medical certificate needed"
	in := transitionInput(ActionRequestDocument, identity.RoleManager, leave.StatusPending, identity.RoleEmployee)
	in.Comments = &comment

	patch, err := Transition(in)
	require.NoError(t, err)

	assert.Nil(t, patch.Status, "request_document never moves the status")
	require.NotNil(t, patch.DocumentRequired)
	assert.True(t, *patch.DocumentRequired)
	require.NotNil(t, patch.ManagerComments)
	assert.Equal(t, comment, *patch.ManagerComments)
}

func TestTransition_RequestDocumentDefaultComment(t *testing.T) {
	patch, err := Transition(transitionInput(ActionRequestDocument, identity.RoleManager, leave.StatusPending, identity.RoleEmployee))
	require.NoError(t, err)

	require.NotNil(t, patch.ManagerComments)
	assert.Equal(t, defaultDocumentComment, *patch.ManagerComments)
}

func TestTransition_RequestDocumentManagerOnly(t *testing.T) {
	_, err := Transition(transitionInput(ActionRequestDocument, identity.RoleHR, leave.StatusPending, identity.RoleEmployee))
	assert.ErrorIs(t, err, leave.ErrIllegalTransition)

	_, err = Transition(transitionInput(ActionRequestDocument, identity.RoleManager, leave.StatusManagerApproved, identity.RoleEmployee))
	assert.ErrorIs(t, err, leave.ErrIllegalTransition)
}
