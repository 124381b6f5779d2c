package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Code identifies which statutory formula a rate feeds.
type Code string

const (
	CodeSeguroSocial Code = "SSO"
	CodeRPE          Code = "RPE"
	CodeLPH          Code = "LPH"
)

// Rate is a named statutory deduction percentage, e.g. "Seguro Social" 4%.
// The Rate field is a fraction (0.04), not a percent figure.
type Rate struct {
	ID        string
	Code      Code
	Name      string
	Rate      decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RateSet is the snapshot of active statutory rates a payroll run computes with.
type RateSet struct {
	SeguroSocial decimal.Decimal
	RPE          decimal.Decimal
	LPH          decimal.Decimal
}
