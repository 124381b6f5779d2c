package period

import "errors"

var (
	ErrPeriodNotFound      = errors.New("payroll period not found")
	ErrPeriodOverlaps      = errors.New("period overlaps an existing period")
	ErrOpenPeriodExists    = errors.New("an open period already exists")
	ErrPeriodAlreadyClosed = errors.New("period is already closed")
	ErrInvalidPeriodType   = errors.New("invalid period type")
	ErrInvalidStartDay     = errors.New("period start date violates the start-day rule for its type")
	ErrPeriodTooLong       = errors.New("period span exceeds the maximum length for its type")
	ErrPeriodNotComputed   = errors.New("period has no payroll computed for every active employee")
)
