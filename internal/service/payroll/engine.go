package payroll

import (
	"fmt"

	"github.com/nominave/nomina-backend-go/internal/domain/deduction"
	"github.com/nominave/nomina-backend-go/internal/domain/employee"
	"github.com/nominave/nomina-backend-go/internal/domain/payroll"
	"github.com/nominave/nomina-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
)

var (
	two       = decimal.NewFromInt(2)
	four      = decimal.NewFromInt(4)
	twelve    = decimal.NewFromInt(12)
	thirty    = decimal.NewFromInt(30)
	fortyFive = decimal.NewFromInt(45)
	fiftyTwo  = decimal.NewFromInt(52)
)

// lphWeeklyFactor divides the monthly salary into the weekly LPH base.
var lphWeeklyFactor = four

// Engine turns one employee's inputs for one period into a line item.
// It is stateless: identical inputs always produce identical outputs.
type Engine struct {
	bonusRate decimal.Decimal
}

func NewEngine(bonusRate decimal.Decimal) *Engine {
	return &Engine{bonusRate: bonusRate}
}

// ComputeInput is everything one employee's computation depends on.
type ComputeInput struct {
	Employee     employee.Employee
	Period       period.Period
	AbsenceCount int
	Rates        deduction.RateSet
	// LoanInstallment is the employee's biweekly installment figure;
	// zero when no approved loan exists.
	LoanInstallment decimal.Decimal
}

// Compute produces the line item for one employee and one period. All
// arithmetic stays in decimal; rounding happens only in the response mapper.
func (e *Engine) Compute(in ComputeInput) (payroll.LineItem, error) {
	if in.Period.Status != period.StatusOpen {
		return payroll.LineItem{}, fmt.Errorf("period %s: %w", in.Period.ID, payroll.ErrPeriodClosed)
	}

	monthly := in.Employee.MonthlySalary
	if !monthly.IsPositive() {
		return payroll.LineItem{}, fmt.Errorf("employee %s: %w", in.Employee.ID, payroll.ErrSalaryNotPositive)
	}

	base, err := ProrateBase(monthly, in.Period.Type)
	if err != nil {
		return payroll.LineItem{}, err
	}

	// SS and RPE are computed from the weekly-equivalent salary scaled by a
	// period-count factor; LPH follows its own legal base. The two formula
	// families are a fixed contract and must not be unified.
	weekly := monthly.Mul(twelve).Div(fiftyTwo)
	factor, err := periodFactor(in.Period.Type)
	if err != nil {
		return payroll.LineItem{}, err
	}

	seguroSocial := weekly.Mul(in.Rates.SeguroSocial).Mul(factor)
	rpe := weekly.Mul(in.Rates.RPE).Mul(factor)

	lph, err := computeLPH(monthly, in.Period.Type, in.Rates.LPH)
	if err != nil {
		return payroll.LineItem{}, err
	}

	absenceDeduction, err := computeAbsenceDeduction(monthly, in.Period.Type, in.AbsenceCount)
	if err != nil {
		return payroll.LineItem{}, err
	}

	loanInstallment, err := adjustLoanInstallment(in.LoanInstallment, in.Period.Type)
	if err != nil {
		return payroll.LineItem{}, err
	}

	// The full bonus is forfeited by a single absence; there is no partial
	// or prorated bonus.
	attendanceBonus := decimal.Zero
	if in.AbsenceCount == 0 {
		attendanceBonus = base.Mul(e.bonusRate)
	}

	totalDeductions := seguroSocial.Add(rpe).Add(lph).Add(absenceDeduction).Add(loanInstallment)
	// No floor: a negative net is surfaced as-is.
	netPay := base.Add(attendanceBonus).Sub(totalDeductions)

	daysResting := in.Period.WeekendDays()

	return payroll.LineItem{
		PeriodID:   in.Period.ID,
		EmployeeID: in.Employee.ID,
		PeriodType: string(in.Period.Type),

		BaseSalary:       base,
		DaysWorked:       in.Period.Days() - daysResting,
		DaysResting:      daysResting,
		AttendanceBonus:  attendanceBonus,
		AbsenceCount:     in.AbsenceCount,
		SeguroSocial:     seguroSocial,
		RPE:              rpe,
		LPH:              lph,
		AbsenceDeduction: absenceDeduction,
		LoanInstallment:  loanInstallment,
		TotalDeductions:  totalDeductions,
		NetPay:           netPay,
	}, nil
}

// ProrateBase converts a monthly salary into the period's base pay.
func ProrateBase(monthly decimal.Decimal, periodType period.Type) (decimal.Decimal, error) {
	switch periodType {
	case period.TypeBiweekly:
		return monthly.Div(two), nil
	case period.TypeMonthly:
		return monthly, nil
	case period.TypeWeekly:
		return monthly.Mul(twelve).Div(fiftyTwo), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", payroll.ErrUnknownPeriodType, periodType)
	}
}

// periodFactor is the number of week-equivalents SS and RPE charge per period.
func periodFactor(periodType period.Type) (decimal.Decimal, error) {
	switch periodType {
	case period.TypeBiweekly:
		return two, nil
	case period.TypeMonthly:
		return four, nil
	case period.TypeWeekly:
		return decimal.NewFromInt(1), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", payroll.ErrUnknownPeriodType, periodType)
	}
}

// computeLPH applies the housing-policy deduction. Biweekly periods carry a
// distinct statutory base that folds 45/12 of a daily salary into the
// biweekly salary before applying the rate.
func computeLPH(monthly decimal.Decimal, periodType period.Type, rate decimal.Decimal) (decimal.Decimal, error) {
	switch periodType {
	case period.TypeBiweekly:
		biweekly := monthly.Div(two)
		base := biweekly.Div(thirty).Mul(fortyFive.Div(twelve)).Add(biweekly)
		return base.Mul(rate), nil
	case period.TypeMonthly:
		return monthly.Mul(rate), nil
	case period.TypeWeekly:
		return monthly.Div(lphWeeklyFactor).Mul(rate), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", payroll.ErrUnknownPeriodType, periodType)
	}
}

// computeAbsenceDeduction charges one day's pay per absence.
//
// The weekly branch multiplies by 30 where the other types divide; the
// figure is dimensionally inconsistent but matches the legacy payroll rules
// this system replaces, and stays until the business confirms the intended
// formula.
func computeAbsenceDeduction(monthly decimal.Decimal, periodType period.Type, absences int) (decimal.Decimal, error) {
	count := decimal.NewFromInt(int64(absences))
	switch periodType {
	case period.TypeMonthly, period.TypeBiweekly:
		return monthly.Div(thirty).Mul(count), nil
	case period.TypeWeekly:
		return monthly.Mul(thirty).Mul(count), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", payroll.ErrUnknownPeriodType, periodType)
	}
}

// adjustLoanInstallment rescales the stored biweekly installment to the
// period cadence.
func adjustLoanInstallment(biweekly decimal.Decimal, periodType period.Type) (decimal.Decimal, error) {
	switch periodType {
	case period.TypeBiweekly:
		return biweekly, nil
	case period.TypeMonthly:
		return biweekly.Mul(two), nil
	case period.TypeWeekly:
		return biweekly.Div(two), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", payroll.ErrUnknownPeriodType, periodType)
	}
}
