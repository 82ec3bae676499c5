package leave

import (
	"context"
	"fmt"

	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
)

const defaultMinNoticeDays = 1

type TypeService struct {
	leave.LeaveTypeRepository
}

func NewTypeService(leaveTypeRepository leave.LeaveTypeRepository) *TypeService {
	return &TypeService{LeaveTypeRepository: leaveTypeRepository}
}

func (s *TypeService) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	minNotice := defaultMinNoticeDays
	if req.MinNoticeDays != nil {
		minNotice = *req.MinNoticeDays
	}

	created, err := s.LeaveTypeRepository.Create(ctx, leave.LeaveType{
		Name:             req.Name,
		DaysAllowed:      req.DaysAllowed,
		MinNoticeDays:    minNotice,
		IsPaid:           req.IsPaid,
		RequiresDocument: req.RequiresDocument,
	})
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

func (s *TypeService) UpdateType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveType, error) {
	if _, err := s.LeaveTypeRepository.GetByID(ctx, req.ID); err != nil {
		return leave.LeaveType{}, err
	}
	if err := s.LeaveTypeRepository.Update(ctx, req); err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to update leave type: %w", err)
	}
	return s.LeaveTypeRepository.GetByID(ctx, req.ID)
}

func (s *TypeService) ListTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return s.LeaveTypeRepository.List(ctx)
}

func (s *TypeService) GetType(ctx context.Context, id string) (leave.LeaveType, error) {
	return s.LeaveTypeRepository.GetByID(ctx, id)
}
