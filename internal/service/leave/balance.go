package leave

import (
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
)

// ComputeBalance folds an employee's full request history into the balance for
// one leave type. Used days come from hr_approved requests only; pending days
// from every in-flight status. Remaining may go negative when the entitlement
// shrank after an approval.
func ComputeBalance(lt leave.LeaveType, history []leave.LeaveRequest) leave.Balance {
	balance := leave.Balance{
		LeaveTypeID:   lt.ID,
		LeaveTypeName: lt.Name,
		DaysAllowed:   lt.DaysAllowed,
	}

	for _, req := range history {
		if req.LeaveTypeID != lt.ID {
			continue
		}
		switch {
		case req.Status == leave.StatusHRApproved:
			balance.DaysUsed += req.DaysCount
		case req.Status.InFlight():
			balance.DaysPending += req.DaysCount
		}
	}

	balance.DaysRemaining = balance.DaysAllowed - balance.DaysUsed
	return balance
}

// ComputeBalances produces one balance per catalog entry, including types the
// employee never touched.
func ComputeBalances(types []leave.LeaveType, history []leave.LeaveRequest) []leave.Balance {
	balances := make([]leave.Balance, 0, len(types))
	for _, lt := range types {
		balances = append(balances, ComputeBalance(lt, history))
	}
	return balances
}
