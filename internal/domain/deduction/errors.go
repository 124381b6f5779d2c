package deduction

import "errors"

var (
	ErrRateNotFound   = errors.New("deduction rate not found")
	ErrRateCodeExists = errors.New("a rate with this code already exists")
	ErrInvalidCode    = errors.New("invalid deduction code")
	ErrRateSetMissing = errors.New("one or more statutory rates are not configured")
)
