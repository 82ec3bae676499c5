package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("Leave type not found")
	ErrLeaveRequestNotFound = errors.New("Leave request not found")

	// Submission-time validation failures. The request row is never created.
	ErrInsufficientBalance   = errors.New("Insufficient leave balance")
	ErrAdvanceNoticeViolated = errors.New("Advance notice period not met")
	ErrDocumentRequired      = errors.New("Supporting document required for this leave type")
	ErrOverlappingRequest    = errors.New("Overlapping leave request exists")
	ErrInvalidDateRange      = errors.New("End date before start date")

	// ErrIllegalTransition is raised when the acting role may not act on the
	// request's current status. Nothing is mutated on this path.
	ErrIllegalTransition = errors.New("Action not permitted at current approval stage")

	// ErrRequestStateChanged is returned when the expected-status write
	// precondition fails, i.e. another approver got there first.
	ErrRequestStateChanged = errors.New("Leave request was modified concurrently")

	ErrNotAmendable  = errors.New("Only pending requests can be amended")
	ErrNotCancelable = errors.New("Request is already in a terminal state")
)
