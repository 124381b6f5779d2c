package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one employee's computed payroll for one period. A new run for
// the same period supersedes the previous items wholesale; items are never
// edited in place.
type LineItem struct {
	ID         string
	PeriodID   string
	EmployeeID string
	PeriodType string

	BaseSalary       decimal.Decimal // prorated for the period
	DaysWorked       int
	DaysResting      int
	AttendanceBonus  decimal.Decimal
	AbsenceCount     int
	SeguroSocial     decimal.Decimal
	RPE              decimal.Decimal
	LPH              decimal.Decimal
	AbsenceDeduction decimal.Decimal
	LoanInstallment  decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetPay           decimal.Decimal

	ComputedAt time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeCedula *string
}
