package leave

import "time"

type CreateLeaveRequestRequest struct {
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`
	Reason      string  `json:"reason"`
	DocumentURL *string `json:"document_url,omitempty"`
}

type AmendLeaveRequestRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Note      *string `json:"note,omitempty"`
}

type DecisionRequest struct {
	RejectionReason *string `json:"rejection_reason,omitempty"`
	Comments        *string `json:"comments,omitempty"`
}

type CreateLeaveTypeRequest struct {
	Name             string  `json:"name"`
	DaysAllowed      float64 `json:"days_allowed"`
	MinNoticeDays    *int    `json:"min_notice_days,omitempty"`
	IsPaid           bool    `json:"is_paid"`
	RequiresDocument bool    `json:"requires_document"`
}

type UpdateLeaveTypeRequest struct {
	ID               string   `json:"-"`
	Name             *string  `json:"name,omitempty"`
	DaysAllowed      *float64 `json:"days_allowed,omitempty"`
	MinNoticeDays    *int     `json:"min_notice_days,omitempty"`
	IsPaid           *bool    `json:"is_paid,omitempty"`
	RequiresDocument *bool    `json:"requires_document,omitempty"`
}

type RequestFilter struct {
	EmployeeID  *string
	LeaveTypeID *string
	Status      *RequestStatus
	From        *time.Time
	To          *time.Time
	Page        int
	Limit       int
}

// CalendarEntry is a leave request projected onto the team calendar. Only
// requests in an approved stage (manager_approved onward) appear; pending,
// rejected and cancelled requests never do.
type CalendarEntry struct {
	RequestID     string        `json:"request_id"`
	EmployeeID    string        `json:"employee_id"`
	EmployeeName  string        `json:"employee_name"`
	LeaveTypeName string        `json:"leave_type_name"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        RequestStatus `json:"status"`
}

type BalanceResponse struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	DaysAllowed   float64 `json:"days_allowed"`
	DaysUsed      float64 `json:"days_used"`
	DaysPending   float64 `json:"days_pending"`
	DaysRemaining float64 `json:"days_remaining"`
	Exhausted     bool    `json:"exhausted"`
}
