package payroll

import "errors"

var (
	ErrLineItemNotFound   = errors.New("payroll line item not found")
	ErrPeriodClosed       = errors.New("period is closed, payroll cannot be computed")
	ErrUnknownPeriodType  = errors.New("unknown period type")
	ErrNoActiveEmployees  = errors.New("no active employees to compute payroll for")
	ErrSalaryNotPositive  = errors.New("employee monthly salary must be positive")
)
