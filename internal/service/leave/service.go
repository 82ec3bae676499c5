package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/identity"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/repository/postgresql"
)

// ApprovalService drives the approval chain. The legality of each action lives
// in Transition; this service only loads state, persists the resulting patch
// and appends the audit event, all in one transaction.
type ApprovalService struct {
	db postgresql.TxStarter
	leave.LeaveRequestRepository
	leave.ApprovalEventRepository
	employee.Repository
}

func NewApprovalService(
	db postgresql.TxStarter,
	leaveRequestRepository leave.LeaveRequestRepository,
	approvalEventRepository leave.ApprovalEventRepository,
	employeeRepository employee.Repository,
) *ApprovalService {
	return &ApprovalService{
		db:                      db,
		LeaveRequestRepository:  leaveRequestRepository,
		ApprovalEventRepository: approvalEventRepository,
		Repository:              employeeRepository,
	}
}

func (s *ApprovalService) Decide(ctx context.Context, requestID string, actor identity.Actor, action Action, req leave.DecisionRequest) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	requester, err := s.Repository.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get requesting employee: %w", err)
	}

	patch, err := Transition(TransitionInput{
		RequestID:       requestID,
		Action:          action,
		ApproverID:      actor.EmployeeID,
		ApproverRole:    actor.Role,
		CurrentStatus:   request.Status,
		RequesterRole:   requester.Role,
		RejectionReason: req.RejectionReason,
		Comments:        req.Comments,
		Now:             time.Now(),
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.LeaveRequestRepository.ApplyPatch(txCtx, patch); err != nil {
			return err
		}
		return s.ApprovalEventRepository.Append(txCtx, patch.Event)
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return s.LeaveRequestRepository.GetByID(ctx, requestID)
}

// AttachDocument satisfies a manager's document demand on the caller's own
// request. It does not move the status; the manager still has to approve.
func (s *ApprovalService) AttachDocument(ctx context.Context, requestID, employeeID, documentURL string) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	if request.EmployeeID != employeeID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if !request.Status.InFlight() {
		return leave.LeaveRequest{}, leave.ErrIllegalTransition
	}

	satisfied := false
	patch := leave.RequestPatch{
		RequestID:        requestID,
		ExpectedStatus:   request.Status,
		DocumentRequired: &satisfied,
		DocumentURL:      &documentURL,
	}
	if err := s.LeaveRequestRepository.ApplyPatch(ctx, patch); err != nil {
		return leave.LeaveRequest{}, err
	}

	return s.LeaveRequestRepository.GetByID(ctx, requestID)
}
