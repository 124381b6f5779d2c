package period

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nominave/nomina-backend-go/internal/domain/employee"
	"github.com/nominave/nomina-backend-go/internal/domain/loan"
	"github.com/nominave/nomina-backend-go/internal/domain/payroll"
	"github.com/nominave/nomina-backend-go/internal/domain/period"
	"github.com/nominave/nomina-backend-go/internal/pkg/database"
	"github.com/nominave/nomina-backend-go/internal/repository/postgresql"
)

// Maximum span per period type, in calendar days inclusive. Biweekly allows
// 16 because the second quincena of a 31-day month runs the 16th through
// the 31st.
var maxSpanDays = map[period.Type]int{
	period.TypeWeekly:   7,
	period.TypeBiweekly: 16,
	period.TypeMonthly:  31,
}

type PeriodServiceImpl struct {
	db           *database.DB
	periodRepo   period.PeriodRepository
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	loanRepo     loan.LoanRepository
}

func NewPeriodService(
	db *database.DB,
	periodRepo period.PeriodRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	loanRepo loan.LoanRepository,
) period.PeriodService {
	return &PeriodServiceImpl{
		db:           db,
		periodRepo:   periodRepo,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		loanRepo:     loanRepo,
	}
}

// Create implements period.PeriodService.
func (s *PeriodServiceImpl) Create(ctx context.Context, req period.CreatePeriodRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	periodType := period.Type(req.Type)
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	if err := validateSpan(periodType, start, end); err != nil {
		return period.PeriodResponse{}, err
	}

	if _, err := s.periodRepo.GetOpen(ctx); err == nil {
		return period.PeriodResponse{}, period.ErrOpenPeriodExists
	} else if !errors.Is(err, period.ErrPeriodNotFound) {
		return period.PeriodResponse{}, err
	}

	overlaps, err := s.periodRepo.HasOverlap(ctx, start, end)
	if err != nil {
		return period.PeriodResponse{}, fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return period.PeriodResponse{}, period.ErrPeriodOverlaps
	}

	created, err := s.periodRepo.Create(ctx, period.Period{
		ID:        uuid.NewString(),
		Type:      periodType,
		StartDate: start,
		EndDate:   end,
		Status:    period.StatusOpen,
	})
	if err != nil {
		return period.PeriodResponse{}, fmt.Errorf("create period: %w", err)
	}

	return toResponse(created), nil
}

// validateSpan enforces the length and start-day rules per period type.
func validateSpan(periodType period.Type, start, end time.Time) error {
	maxDays, ok := maxSpanDays[periodType]
	if !ok {
		return fmt.Errorf("%w: %q", period.ErrInvalidPeriodType, periodType)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxDays {
		return fmt.Errorf("%w: %d days, maximum %d for %s", period.ErrPeriodTooLong, days, maxDays, periodType)
	}

	switch periodType {
	case period.TypeBiweekly:
		if d := start.Day(); d != 1 && d != 16 {
			return fmt.Errorf("%w: biweekly periods start on day 1 or 16, got day %d", period.ErrInvalidStartDay, d)
		}
	case period.TypeMonthly:
		if d := start.Day(); d != 1 {
			return fmt.Errorf("%w: monthly periods start on day 1, got day %d", period.ErrInvalidStartDay, d)
		}
	case period.TypeWeekly:
		if wd := start.Weekday(); wd != time.Monday {
			return fmt.Errorf("%w: weekly periods start on Monday, got %s", period.ErrInvalidStartDay, wd)
		}
	}
	return nil
}

// Get implements period.PeriodService.
func (s *PeriodServiceImpl) Get(ctx context.Context, id string) (period.PeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	return toResponse(p), nil
}

// List implements period.PeriodService.
func (s *PeriodServiceImpl) List(ctx context.Context) ([]period.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, toResponse(p))
	}
	return result, nil
}

// SuggestEndDate implements period.PeriodService. The suggestion is a
// convenience default, not a constraint: the operator may override within
// the span limit.
func (s *PeriodServiceImpl) SuggestEndDate(ctx context.Context, req period.SuggestEndDateRequest) (period.SuggestEndDateResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return period.SuggestEndDateResponse{}, fmt.Errorf("parse start_date: %w", err)
	}

	var end time.Time
	switch period.Type(req.Type) {
	case period.TypeWeekly:
		end = start.AddDate(0, 0, 6)
	case period.TypeBiweekly:
		if start.Day() <= 15 {
			end = time.Date(start.Year(), start.Month(), 15, 0, 0, 0, 0, start.Location())
		} else {
			end = lastDayOfMonth(start)
		}
	case period.TypeMonthly:
		end = lastDayOfMonth(start)
	default:
		return period.SuggestEndDateResponse{}, fmt.Errorf("%w: %q", period.ErrInvalidPeriodType, req.Type)
	}

	return period.SuggestEndDateResponse{
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   end.Format("2006-01-02"),
	}, nil
}

func lastDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).
		AddDate(0, 1, -1)
}

// Close implements period.PeriodService. The state transition and every loan
// installment payment commit or roll back together: a crash mid-close leaves
// the period open and re-runnable.
func (s *PeriodServiceImpl) Close(ctx context.Context, id string) (period.PeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	if p.Status != period.StatusOpen {
		return period.PeriodResponse{}, period.ErrPeriodAlreadyClosed
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return period.PeriodResponse{}, fmt.Errorf("get active employees: %w", err)
	}
	computed, err := s.payrollRepo.CountByPeriod(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, fmt.Errorf("count line items: %w", err)
	}
	if computed < len(employees) {
		return period.PeriodResponse{}, fmt.Errorf("%w: %d of %d employees computed",
			period.ErrPeriodNotComputed, computed, len(employees))
	}

	items, err := s.payrollRepo.ListByPeriod(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	closedAt := time.Now().UTC()
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.periodRepo.CloseTx(ctx, tx, id, closedAt); err != nil {
			return fmt.Errorf("close period: %w", err)
		}

		for _, item := range items {
			if !item.LoanInstallment.IsPositive() {
				continue
			}
			activeLoan, err := s.loanRepo.GetActiveByEmployee(ctx, item.EmployeeID)
			if err != nil {
				if errors.Is(err, loan.ErrLoanNotFound) {
					continue
				}
				return fmt.Errorf("get loan for employee %s: %w", item.EmployeeID, err)
			}
			payment := loan.InstallmentPayment{
				ID:       uuid.NewString(),
				LoanID:   activeLoan.ID,
				PeriodID: id,
				Amount:   item.LoanInstallment,
				PaidAt:   closedAt,
			}
			if err := s.loanRepo.RecordPaymentTx(ctx, tx, payment); err != nil {
				return fmt.Errorf("record payment for loan %s: %w", activeLoan.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return period.PeriodResponse{}, err
	}

	p.Status = period.StatusClosed
	p.ClosedAt = &closedAt
	return toResponse(p), nil
}

func toResponse(p period.Period) period.PeriodResponse {
	var closedAt *string
	if p.ClosedAt != nil {
		str := p.ClosedAt.Format("2006-01-02T15:04:05Z07:00")
		closedAt = &str
	}

	resting := p.WeekendDays()
	return period.PeriodResponse{
		ID:          p.ID,
		Type:        string(p.Type),
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		Status:      string(p.Status),
		Days:        p.Days(),
		DaysWorked:  p.Days() - resting,
		DaysResting: resting,
		ClosedAt:    closedAt,
	}
}
