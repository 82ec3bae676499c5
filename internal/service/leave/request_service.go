package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/pkg/dateutil"
	"github.com/peoplecore/hr-backend-go/internal/repository/postgresql"
)

type RequestService struct {
	db postgresql.TxStarter
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	leave.ApprovalEventRepository
	employee.Repository
}

func NewRequestService(
	db postgresql.TxStarter,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	approvalEventRepository leave.ApprovalEventRepository,
	employeeRepository employee.Repository,
) *RequestService {
	return &RequestService{
		db:                      db,
		LeaveTypeRepository:     leaveTypeRepository,
		LeaveRequestRepository:  leaveRequestRepository,
		ApprovalEventRepository: approvalEventRepository,
		Repository:              employeeRepository,
	}
}

func (r *RequestService) CreateRequest(ctx context.Context, userID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	emp, err := r.Repository.GetByUserID(ctx, userID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee by user ID: %w", err)
	}

	leaveType, err := r.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave type by ID: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	if err := validateNotice(leaveType, startDate, time.Now()); err != nil {
		return leave.LeaveRequest{}, err
	}

	if leaveType.RequiresDocument && (req.DocumentURL == nil || *req.DocumentURL == "") {
		return leave.LeaveRequest{}, leave.ErrDocumentRequired
	}

	daysCount := float64(dateutil.WorkingDays(startDate, endDate))

	history, err := r.LeaveRequestRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request history: %w", err)
	}
	balance := ComputeBalance(leaveType, history)
	if daysCount > balance.DaysRemaining {
		return leave.LeaveRequest{}, leave.ErrInsufficientBalance
	}

	hasOverlap, err := r.LeaveRequestRepository.CheckOverlapping(ctx, emp.ID, startDate, endDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}
	if hasOverlap {
		return leave.LeaveRequest{}, leave.ErrOverlappingRequest
	}

	request := leave.LeaveRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		DaysCount:   daysCount,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		DocumentURL: req.DocumentURL,
	}

	created, err := r.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// Amend replaces the dates or reason of the caller's own pending request.
// Anything past pending has already been seen by an approver and must be
// cancelled and refiled instead.
func (r *RequestService) Amend(ctx context.Context, requestID, employeeID string, req leave.AmendLeaveRequestRequest) (leave.LeaveRequest, error) {
	request, err := r.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	if request.EmployeeID != employeeID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrNotAmendable
	}

	startDate := request.StartDate
	endDate := request.EndDate
	reason := request.Reason

	if req.StartDate != nil {
		if startDate, err = time.Parse("2006-01-02", *req.StartDate); err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
		}
	}
	if req.EndDate != nil {
		if endDate, err = time.Parse("2006-01-02", *req.EndDate); err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
		}
	}
	if endDate.Before(startDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}
	if req.Reason != nil {
		reason = *req.Reason
	}

	leaveType, err := r.LeaveTypeRepository.GetByID(ctx, request.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave type by ID: %w", err)
	}
	if req.StartDate != nil {
		if err := validateNotice(leaveType, startDate, time.Now()); err != nil {
			return leave.LeaveRequest{}, err
		}
	}

	daysCount := float64(dateutil.WorkingDays(startDate, endDate))
	amendedAt := time.Now()

	if err := r.LeaveRequestRepository.Amend(ctx, requestID, startDate, endDate, daysCount, reason, req.Note, amendedAt); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to amend leave request: %w", err)
	}

	return r.LeaveRequestRepository.GetByID(ctx, requestID)
}

// Cancel withdraws the caller's own request from any in-flight status. The row
// stays behind as history; the balance accountant simply stops counting it.
func (r *RequestService) Cancel(ctx context.Context, requestID, employeeID string) (leave.LeaveRequest, error) {
	request, err := r.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	if request.EmployeeID != employeeID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if !request.Status.InFlight() {
		return leave.LeaveRequest{}, leave.ErrNotCancelable
	}

	now := time.Now()
	cancelled := leave.StatusCancelled
	patch := leave.RequestPatch{
		RequestID:      requestID,
		ExpectedStatus: request.Status,
		Status:         &cancelled,
		Event: leave.ApprovalEvent{
			RequestID: requestID,
			Stage:     "employee",
			ActorID:   employeeID,
			Decision:  leave.DecisionCancelled,
			CreatedAt: now,
		},
	}

	err = postgresql.WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		if err := r.LeaveRequestRepository.ApplyPatch(txCtx, patch); err != nil {
			return err
		}
		return r.ApprovalEventRepository.Append(txCtx, patch.Event)
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return r.LeaveRequestRepository.GetByID(ctx, requestID)
}

// GetBalances derives the employee's balance for every catalog entry from
// scratch; nothing is read from a stored counter.
func (r *RequestService) GetBalances(ctx context.Context, employeeID string) ([]leave.Balance, error) {
	types, err := r.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	history, err := r.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request history: %w", err)
	}
	return ComputeBalances(types, history), nil
}

func (r *RequestService) GetRequest(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	return r.LeaveRequestRepository.GetByID(ctx, requestID)
}

func (r *RequestService) ListRequests(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return r.LeaveRequestRepository.List(ctx, filter)
}

func (r *RequestService) GetCalendar(ctx context.Context, from, to time.Time) ([]leave.CalendarEntry, error) {
	if to.Before(from) {
		return nil, leave.ErrInvalidDateRange
	}
	return r.LeaveRequestRepository.ListCalendar(ctx, from, to)
}

func (r *RequestService) ListEvents(ctx context.Context, requestID string) ([]leave.ApprovalEvent, error) {
	if _, err := r.LeaveRequestRepository.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return r.ApprovalEventRepository.ListByRequest(ctx, requestID)
}

func validateNotice(leaveType leave.LeaveType, startDate, now time.Time) error {
	noticeDays := int(dateutil.Midnight(startDate).Sub(dateutil.Midnight(now)).Hours() / 24)
	if noticeDays < leaveType.MinNoticeDays {
		return leave.ErrAdvanceNoticeViolated
	}
	return nil
}
