package leave

import "time"

// RequestPatch is the field update a single approval-chain action produces.
// Nil fields are left untouched. The repository applies a patch only when the
// row still carries ExpectedStatus, which turns two racing approvers into one
// winner and one ErrRequestStateChanged.
type RequestPatch struct {
	RequestID      string
	ExpectedStatus RequestStatus

	// Status is nil for request_document, which never moves the request.
	Status *RequestStatus

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
	DocumentRequired *bool
	DocumentURL      *string

	// Event is appended to the audit log in the same transaction.
	Event ApprovalEvent
}
