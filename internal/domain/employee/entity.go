package employee

import (
	"context"
	"errors"

	"github.com/peoplecore/hr-backend-go/internal/domain/identity"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee is the slim profile projection this core needs: identity, role in
// the approval chain, and whether payroll should include them.
type Employee struct {
	ID       string
	UserID   string
	FullName string
	Email    string
	Role     identity.Role
	Status   Status
}

var ErrEmployeeNotFound = errors.New("Employee not found")

type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	CountActive(ctx context.Context) (int, error)
}
