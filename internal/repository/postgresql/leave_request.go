package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id,
	lr.start_date, lr.end_date, lr.days_count, lr.reason, lr.status,
	lr.manager_approved_by, lr.manager_approved_at,
	lr.gm_approved_by, lr.gm_approved_at,
	lr.director_approved_by, lr.director_approved_at,
	lr.hr_approved_by, lr.hr_approved_at, lr.hr_notified_at,
	lr.rejected_by, lr.rejected_at, lr.rejection_reason,
	lr.manager_comments, lr.document_required, lr.document_url,
	lr.amended_at, lr.amendment_note,
	lr.created_at, lr.updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID,
		&req.StartDate, &req.EndDate, &req.DaysCount, &req.Reason, &req.Status,
		&req.ManagerApprovedBy, &req.ManagerApprovedAt,
		&req.GMApprovedBy, &req.GMApprovedAt,
		&req.DirectorApprovedBy, &req.DirectorApprovedAt,
		&req.HRApprovedBy, &req.HRApprovedAt, &req.HRNotifiedAt,
		&req.RejectedBy, &req.RejectedAt, &req.RejectionReason,
		&req.ManagerComments, &req.DocumentRequired, &req.DocumentURL,
		&req.AmendedAt, &req.AmendmentNote,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id,
			start_date, end_date, days_count, reason,
			status, document_required, document_url,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6,
			$7, $8, $9,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.DaysCount, request.Reason,
		request.Status, request.DocumentRequired, request.DocumentURL,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `,
			   lt.name AS leave_type_name,
			   e.full_name AS employee_name
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	var leaveTypeName, employeeName string
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID,
		&req.StartDate, &req.EndDate, &req.DaysCount, &req.Reason, &req.Status,
		&req.ManagerApprovedBy, &req.ManagerApprovedAt,
		&req.GMApprovedBy, &req.GMApprovedAt,
		&req.DirectorApprovedBy, &req.DirectorApprovedAt,
		&req.HRApprovedBy, &req.HRApprovedAt, &req.HRNotifiedAt,
		&req.RejectedBy, &req.RejectedAt, &req.RejectionReason,
		&req.ManagerComments, &req.DocumentRequired, &req.DocumentURL,
		&req.AmendedAt, &req.AmendmentNote,
		&req.CreatedAt, &req.UpdatedAt,
		&leaveTypeName, &employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	req.LeaveTypeName = &leaveTypeName
	req.EmployeeName = &employeeName
	return req, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND lr.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.LeaveTypeID != nil {
		whereClause += fmt.Sprintf(" AND lr.leave_type_id = $%d", argIndex)
		args = append(args, *filter.LeaveTypeID)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND lr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.From != nil {
		whereClause += fmt.Sprintf(" AND lr.end_date >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}
	if filter.To != nil {
		whereClause += fmt.Sprintf(" AND lr.start_date <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s, lt.name AS leave_type_name, e.full_name AS employee_name
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employees e ON lr.employee_id = e.id
		%s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, whereClause, argIndex, argIndex+1)
	queryArgs := append(args, limit, offset)

	rows, err := q.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var leaveTypeName, employeeName string
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID,
			&req.StartDate, &req.EndDate, &req.DaysCount, &req.Reason, &req.Status,
			&req.ManagerApprovedBy, &req.ManagerApprovedAt,
			&req.GMApprovedBy, &req.GMApprovedAt,
			&req.DirectorApprovedBy, &req.DirectorApprovedAt,
			&req.HRApprovedBy, &req.HRApprovedAt, &req.HRNotifiedAt,
			&req.RejectedBy, &req.RejectedAt, &req.RejectionReason,
			&req.ManagerComments, &req.DocumentRequired, &req.DocumentURL,
			&req.AmendedAt, &req.AmendmentNote,
			&req.CreatedAt, &req.UpdatedAt,
			&leaveTypeName, &employeeName,
		); err != nil {
			return nil, 0, err
		}
		req.LeaveTypeName = &leaveTypeName
		req.EmployeeName = &employeeName
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leave_requests lr %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ApplyPatch writes only the fields the patch carries, and only while the row
// still holds the expected status. Zero rows affected means another actor got
// there first.
func (r *leaveRequestRepositoryImpl) ApplyPatch(ctx context.Context, patch leave.RequestPatch) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIndex := 1

	set := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.ManagerApprovedBy != nil {
		set("manager_approved_by", *patch.ManagerApprovedBy)
	}
	if patch.ManagerApprovedAt != nil {
		set("manager_approved_at", *patch.ManagerApprovedAt)
	}
	if patch.GMApprovedBy != nil {
		set("gm_approved_by", *patch.GMApprovedBy)
	}
	if patch.GMApprovedAt != nil {
		set("gm_approved_at", *patch.GMApprovedAt)
	}
	if patch.DirectorApprovedBy != nil {
		set("director_approved_by", *patch.DirectorApprovedBy)
	}
	if patch.DirectorApprovedAt != nil {
		set("director_approved_at", *patch.DirectorApprovedAt)
	}
	if patch.HRApprovedBy != nil {
		set("hr_approved_by", *patch.HRApprovedBy)
	}
	if patch.HRApprovedAt != nil {
		set("hr_approved_at", *patch.HRApprovedAt)
	}
	if patch.HRNotifiedAt != nil {
		set("hr_notified_at", *patch.HRNotifiedAt)
	}
	if patch.RejectedBy != nil {
		set("rejected_by", *patch.RejectedBy)
	}
	if patch.RejectedAt != nil {
		set("rejected_at", *patch.RejectedAt)
	}
	if patch.RejectionReason != nil {
		set("rejection_reason", *patch.RejectionReason)
	}
	if patch.ManagerComments != nil {
		set("manager_comments", *patch.ManagerComments)
	}
	if patch.DocumentRequired != nil {
		set("document_required", *patch.DocumentRequired)
	}
	if patch.DocumentURL != nil {
		set("document_url", *patch.DocumentURL)
	}

	query := fmt.Sprintf(
		"UPDATE leave_requests SET %s WHERE id = $%d AND status = $%d",
		strings.Join(setClauses, ", "), argIndex, argIndex+1,
	)
	args = append(args, patch.RequestID, patch.ExpectedStatus)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrRequestStateChanged
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Amend(ctx context.Context, id string, startDate, endDate time.Time, daysCount float64, reason string, note *string, amendedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET start_date = $1, end_date = $2, days_count = $3, reason = $4,
		    amendment_note = $5, amended_at = $6, updated_at = NOW()
		WHERE id = $7 AND status = $8
	`

	commandTag, err := q.Exec(ctx, query, startDate, endDate, daysCount, reason, note, amendedAt, id, leave.StatusPending)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrNotAmendable
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status NOT IN ($2, $3)
			  AND start_date <= $4
			  AND end_date >= $5
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, leave.StatusRejected, leave.StatusCancelled, endDate, startDate).Scan(&exists)
	return exists, err
}

func (r *leaveRequestRepositoryImpl) ListApprovedBetween(ctx context.Context, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.status = $1
		  AND lr.start_date <= $2
		  AND lr.end_date >= $3
		ORDER BY lr.employee_id, lr.start_date
	`

	rows, err := q.Query(ctx, query, leave.StatusHRApproved, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) ListCalendar(ctx context.Context, from, to time.Time) ([]leave.CalendarEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, e.full_name, lt.name, lr.start_date, lr.end_date, lr.status
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = ANY($1)
		  AND lr.start_date <= $2
		  AND lr.end_date >= $3
		ORDER BY lr.start_date, e.full_name
	`

	rows, err := q.Query(ctx, query, leave.CalendarVisibleStatuses, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []leave.CalendarEntry
	for rows.Next() {
		var e leave.CalendarEntry
		if err := rows.Scan(&e.RequestID, &e.EmployeeID, &e.EmployeeName, &e.LeaveTypeName, &e.StartDate, &e.EndDate, &e.Status); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
