package leave

import "time"

type RequestStatus string

const (
	StatusPending          RequestStatus = "pending"
	StatusManagerApproved  RequestStatus = "manager_approved"
	StatusGMApproved       RequestStatus = "gm_approved"
	StatusDirectorApproved RequestStatus = "director_approved"
	StatusHRApproved       RequestStatus = "hr_approved"
	StatusRejected         RequestStatus = "rejected"
	StatusCancelled        RequestStatus = "cancelled"
)

// InFlightStatuses are the non-terminal statuses. They drive the pending-day
// balance bucket and the set of requests an approver may still act on.
var InFlightStatuses = []RequestStatus{
	StatusPending,
	StatusManagerApproved,
	StatusGMApproved,
	StatusDirectorApproved,
}

// CalendarVisibleStatuses are the statuses shown on the team calendar: every
// approved stage. A pending request has not been seen by anyone yet, so it
// stays off the calendar, as do rejected and cancelled requests.
var CalendarVisibleStatuses = []RequestStatus{
	StatusManagerApproved,
	StatusGMApproved,
	StatusDirectorApproved,
	StatusHRApproved,
}

// Terminal reports whether no further transition may leave s.
func (s RequestStatus) Terminal() bool {
	switch s {
	case StatusHRApproved, StatusRejected, StatusCancelled:
		return true
	case StatusPending, StatusManagerApproved, StatusGMApproved, StatusDirectorApproved:
		return false
	}
	return false
}

// InFlight reports whether s still awaits a decision somewhere in the chain.
func (s RequestStatus) InFlight() bool {
	for _, st := range InFlightStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// LeaveType is the per-year entitlement catalog. Edited only by policy
// administrators.
type LeaveType struct {
	ID               string
	Name             string
	DaysAllowed      float64
	MinNoticeDays    int // minimum advance-notice days, default 1
	IsPaid           bool
	RequiresDocument bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LeaveRequest is never deleted; its lifecycle is the status field plus the
// per-stage audit columns below.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	DaysCount float64
	Reason    string

	Status RequestStatus

	ManagerApprovedBy  *string
	ManagerApprovedAt  *time.Time
	GMApprovedBy       *string
	GMApprovedAt       *time.Time
	DirectorApprovedBy *string
	DirectorApprovedAt *time.Time
	HRApprovedBy       *string
	HRApprovedAt       *time.Time
	HRNotifiedAt       *time.Time

	RejectedBy      *string
	RejectedAt      *time.Time
	RejectionReason *string

	ManagerComments  *string
	DocumentRequired bool
	DocumentURL      *string

	AmendedAt     *time.Time
	AmendmentNote *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	LeaveTypeName *string
	EmployeeName  *string
}

type Decision string

const (
	DecisionApproved          Decision = "approved"
	DecisionRejected          Decision = "rejected"
	DecisionDocumentRequested Decision = "document_requested"
	DecisionCancelled         Decision = "cancelled"
)

// ApprovalEvent is the append-only audit trail written alongside the flat
// per-stage columns. The transition table, not this log, is the policy.
type ApprovalEvent struct {
	ID        string
	RequestID string
	Stage     string
	ActorID   string
	Decision  Decision
	Comment   *string
	CreatedAt time.Time
}

// Balance is derived on every read from the request history; it is never
// persisted or cached across a submission.
type Balance struct {
	LeaveTypeID   string
	LeaveTypeName string
	DaysAllowed   float64
	DaysUsed      float64
	DaysPending   float64
	DaysRemaining float64
}

// Exhausted reports whether the entitlement is used up. DaysRemaining is not
// floored at zero, so callers surface this flag instead of clamping.
func (b Balance) Exhausted() bool {
	return b.DaysRemaining <= 0
}
