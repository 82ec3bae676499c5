package leave

import (
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/identity"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
)

type Action string

const (
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionRequestDocument Action = "request_document"
)

// defaultDocumentComment is stored when a manager requests a document without
// supplying their own wording.
const defaultDocumentComment = "Please attach a supporting document for this leave request."

// TransitionInput carries everything a single approval-chain action needs.
// The acting user and the requester's role arrive explicitly; nothing is read
// from ambient session state.
type TransitionInput struct {
	RequestID     string
	Action        Action
	ApproverID    string
	ApproverRole  identity.Role
	CurrentStatus leave.RequestStatus
	RequesterRole identity.Role

	RejectionReason *string
	Comments        *string
	Now             time.Time
}

// Transition computes the field patch a single action produces, or
// ErrIllegalTransition when the gating table forbids the role from acting on
// the current status. It is pure: callers persist the patch, and must not
// mutate anything on the error path.
func Transition(in TransitionInput) (leave.RequestPatch, error) {
	if !canAct(in.ApproverRole, in.CurrentStatus, in.RequesterRole) {
		return leave.RequestPatch{}, leave.ErrIllegalTransition
	}

	switch in.Action {
	case ActionApprove:
		return approvePatch(in), nil
	case ActionReject:
		return rejectPatch(in), nil
	case ActionRequestDocument:
		// Only a manager reviewing a fresh request may ask for paperwork.
		if in.ApproverRole != identity.RoleManager || in.CurrentStatus != leave.StatusPending {
			return leave.RequestPatch{}, leave.ErrIllegalTransition
		}
		return documentPatch(in), nil
	}
	return leave.RequestPatch{}, leave.ErrIllegalTransition
}

// canAct is the approval gating table: which role may act from which status.
func canAct(role identity.Role, status leave.RequestStatus, requesterRole identity.Role) bool {
	switch role {
	case identity.RoleManager:
		return status == leave.StatusPending
	case identity.RoleGeneralManager:
		if status == leave.StatusManagerApproved {
			return true
		}
		// A GM may pick up a pending request only when it was filed by a
		// manager or by a general manager (their direct reporting line).
		return status == leave.StatusPending &&
			(requesterRole == identity.RoleManager || requesterRole == identity.RoleGeneralManager)
	case identity.RoleDirector:
		return status == leave.StatusGMApproved
	case identity.RoleHR, identity.RoleAdmin:
		switch status {
		case leave.StatusPending, leave.StatusManagerApproved, leave.StatusGMApproved, leave.StatusDirectorApproved:
			return true
		case leave.StatusHRApproved, leave.StatusRejected, leave.StatusCancelled:
			return false
		}
		return false
	case identity.RoleEmployee:
		return false
	}
	return false
}

func approvePatch(in TransitionInput) leave.RequestPatch {
	patch := leave.RequestPatch{
		RequestID:       in.RequestID,
		ExpectedStatus:  in.CurrentStatus,
		ManagerComments: in.Comments,
	}
	now := in.Now

	switch in.ApproverRole {
	case identity.RoleManager:
		patch.Status = statusPtr(leave.StatusManagerApproved)
		patch.ManagerApprovedBy = &in.ApproverID
		patch.ManagerApprovedAt = &now
		patch.Event = event(in, "manager", leave.DecisionApproved)

	case identity.RoleGeneralManager:
		patch.Status = statusPtr(leave.StatusGMApproved)
		patch.GMApprovedBy = &in.ApproverID
		patch.GMApprovedAt = &now
		// HR gets notified now unless this is the GM's own request entering
		// the chain: that one still has to pass the director first.
		ownRequestAtPending := in.RequesterRole == identity.RoleGeneralManager &&
			in.CurrentStatus == leave.StatusPending
		if !ownRequestAtPending {
			patch.HRNotifiedAt = &now
		}
		patch.Event = event(in, "general_manager", leave.DecisionApproved)

	case identity.RoleDirector:
		patch.Status = statusPtr(leave.StatusDirectorApproved)
		patch.DirectorApprovedBy = &in.ApproverID
		patch.DirectorApprovedAt = &now
		// Director is always the stage immediately before HR.
		patch.HRNotifiedAt = &now
		patch.Event = event(in, "director", leave.DecisionApproved)

	case identity.RoleHR, identity.RoleAdmin:
		patch.Status = statusPtr(leave.StatusHRApproved)
		patch.HRApprovedBy = &in.ApproverID
		patch.HRApprovedAt = &now
		patch.Event = event(in, "hr", leave.DecisionApproved)
	}

	return patch
}

func rejectPatch(in TransitionInput) leave.RequestPatch {
	now := in.Now
	cleared := false
	return leave.RequestPatch{
		RequestID:       in.RequestID,
		ExpectedStatus:  in.CurrentStatus,
		Status:          statusPtr(leave.StatusRejected),
		RejectedBy:      &in.ApproverID,
		RejectedAt:      &now,
		RejectionReason: in.RejectionReason,
		ManagerComments: in.Comments,
		// An open document demand dies with the request.
		DocumentRequired: &cleared,
		Event:            event(in, stageOf(in.ApproverRole), leave.DecisionRejected),
	}
}

func documentPatch(in TransitionInput) leave.RequestPatch {
	required := true
	comment := in.Comments
	if comment == nil || *comment == "" {
		def := defaultDocumentComment
		comment = &def
	}
	return leave.RequestPatch{
		RequestID:        in.RequestID,
		ExpectedStatus:   in.CurrentStatus,
		DocumentRequired: &required,
		ManagerComments:  comment,
		Event:            event(in, "manager", leave.DecisionDocumentRequested),
	}
}

func stageOf(role identity.Role) string {
	switch role {
	case identity.RoleManager:
		return "manager"
	case identity.RoleGeneralManager:
		return "general_manager"
	case identity.RoleDirector:
		return "director"
	case identity.RoleHR, identity.RoleAdmin:
		return "hr"
	}
	return string(role)
}

func event(in TransitionInput, stage string, decision leave.Decision) leave.ApprovalEvent {
	return leave.ApprovalEvent{
		RequestID: in.RequestID,
		Stage:     stage,
		ActorID:   in.ApproverID,
		Decision:  decision,
		Comment:   in.Comments,
		CreatedAt: in.Now,
	}
}

func statusPtr(s leave.RequestStatus) *leave.RequestStatus {
	return &s
}
