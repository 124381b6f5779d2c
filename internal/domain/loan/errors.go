package loan

import "errors"

var (
	ErrLoanNotFound          = errors.New("loan not found")
	ErrInvalidTransition     = errors.New("loan status transition not allowed")
	ErrActiveLoanExists      = errors.New("employee already has a pending or approved loan")
	ErrLoanNotApproved       = errors.New("loan is not approved")
	ErrInstallmentExceedsBalance = errors.New("installment amount exceeds remaining balance")
)
