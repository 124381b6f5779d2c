package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusLiquidated Status = "liquidated"
)

// allowedTransitions is the loan lifecycle:
// Pending -> Approved -> Liquidated, or Pending -> Rejected.
var allowedTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusLiquidated},
}

// CanTransition reports whether moving from s to target is a legal step.
func (s Status) CanTransition(target Status) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

type Loan struct {
	ID                 string
	EmployeeID         string
	Principal          decimal.Decimal
	BiweeklyInstallment decimal.Decimal
	Balance            decimal.Decimal
	Status             Status
	RequestedAt        time.Time
	DecidedAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	EmployeeName *string
}

// InstallmentPayment is one recorded payment against a loan, written when a
// payroll period closes.
type InstallmentPayment struct {
	ID       string
	LoanID   string
	PeriodID string
	Amount   decimal.Decimal
	PaidAt   time.Time
}
