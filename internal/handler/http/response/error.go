package response

import (
	"errors"
	"net/http"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/identity"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAdvanceNoticeViolated):
		BadRequest(w, "Advance notice period not met", nil)
	case errors.Is(err, leave.ErrDocumentRequired):
		BadRequest(w, "Supporting document required for this leave type", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "Overlapping leave request exists")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date before start date", nil)
	case errors.Is(err, leave.ErrIllegalTransition):
		Forbidden(w, "Action not permitted at current approval stage")
	case errors.Is(err, leave.ErrRequestStateChanged):
		Conflict(w, "Leave request was modified concurrently")
	case errors.Is(err, leave.ErrNotAmendable):
		Conflict(w, "Only pending requests can be amended")
	case errors.Is(err, leave.ErrNotCancelable):
		Conflict(w, "Request is already in a terminal state")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrNoActiveSalaryStructure):
		BadRequest(w, "No active salary structures configured", nil)
	case errors.Is(err, payroll.ErrPeriodNotDraft):
		Conflict(w, "Payroll period is not in draft status")
	case errors.Is(err, payroll.ErrPayslipsAlreadyExist):
		Conflict(w, "Payslips already generated for this period")
	case errors.Is(err, payroll.ErrPayslipNotPending):
		Conflict(w, "Payslip is not pending")
	case errors.Is(err, payroll.ErrDeductionTypeNotFound):
		NotFound(w, "Deduction type not found")
	case errors.Is(err, payroll.ErrInvalidDeductionMethod):
		BadRequest(w, "Deduction method must be fixed or percentage", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, identity.ErrUnknownRole):
		Forbidden(w, "Unknown role")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
