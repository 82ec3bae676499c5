package dashboard

// OverviewStats is the executive rollup. All counts are derived from the same
// status vocabulary the leave and attendance domains use; "present" includes
// late arrivals, "pending" covers every in-flight approval stage.
type OverviewStats struct {
	ActiveEmployees      int     `json:"active_employees"`
	PresentToday         int     `json:"present_today"`
	OnLeaveToday         int     `json:"on_leave_today"`
	AbsentToday          int     `json:"absent_today"`
	PendingLeaveRequests int     `json:"pending_leave_requests"`
	AttendanceRate       float64 `json:"attendance_rate"` // percent, capped at 100
}
