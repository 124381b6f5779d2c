package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nominave/nomina-backend-go/internal/domain/attendance"
	"github.com/nominave/nomina-backend-go/internal/domain/deduction"
	"github.com/nominave/nomina-backend-go/internal/domain/employee"
	"github.com/nominave/nomina-backend-go/internal/domain/loan"
	"github.com/nominave/nomina-backend-go/internal/domain/payroll"
	"github.com/nominave/nomina-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	engine            *Engine
	payrollRepo       payroll.PayrollRepository
	periodRepo        period.PeriodRepository
	employeeRepo      employee.EmployeeRepository
	loanRepo          loan.LoanRepository
	rateService       deduction.RateService
	attendanceService attendance.AttendanceService
}

func NewPayrollService(
	engine *Engine,
	payrollRepo payroll.PayrollRepository,
	periodRepo period.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
	loanRepo loan.LoanRepository,
	rateService deduction.RateService,
	attendanceService attendance.AttendanceService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		engine:            engine,
		payrollRepo:       payrollRepo,
		periodRepo:        periodRepo,
		employeeRepo:      employeeRepo,
		loanRepo:          loanRepo,
		rateService:       rateService,
		attendanceService: attendanceService,
	}
}

// RunPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) RunPeriod(ctx context.Context, periodID string) (payroll.RunPayrollResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}
	if p.Status != period.StatusOpen {
		return payroll.RunPayrollResponse{}, fmt.Errorf("period %s: %w", periodID, payroll.ErrPeriodClosed)
	}

	rates, err := s.rateService.ActiveRateSet(ctx)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("get active employees: %w", err)
	}
	if len(employees) == 0 {
		return payroll.RunPayrollResponse{}, payroll.ErrNoActiveEmployees
	}

	now := time.Now().UTC()
	var items []payroll.LineItem
	var failures []payroll.ComputeFailure

	// One employee's failure must not abort the batch: it is recorded and
	// the remaining employees still get their line items.
	for _, emp := range employees {
		item, err := s.computeOne(ctx, emp, p, rates)
		if err != nil {
			name := emp.FullName()
			failures = append(failures, payroll.ComputeFailure{
				EmployeeID:   emp.ID,
				EmployeeName: name,
				Reason:       err.Error(),
			})
			continue
		}
		item.ID = uuid.NewString()
		item.ComputedAt = now
		items = append(items, item)
	}

	persisted, err := s.payrollRepo.ReplaceForPeriod(ctx, periodID, items)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("persist line items: %w", err)
	}

	return payroll.RunPayrollResponse{
		PeriodID: periodID,
		Items:    payroll.MapToResponses(persisted),
		Failures: failures,
	}, nil
}

func (s *PayrollServiceImpl) computeOne(ctx context.Context, emp employee.Employee, p period.Period, rates deduction.RateSet) (payroll.LineItem, error) {
	absences, err := s.attendanceService.AbsenceCount(ctx, emp.ID, p.StartDate, p.EndDate)
	if err != nil {
		return payroll.LineItem{}, fmt.Errorf("absence count: %w", err)
	}

	installment := decimal.Zero
	activeLoan, err := s.loanRepo.GetActiveByEmployee(ctx, emp.ID)
	switch {
	case err == nil && activeLoan.Status == loan.StatusApproved:
		installment = activeLoan.BiweeklyInstallment
	case err != nil && !errors.Is(err, loan.ErrLoanNotFound):
		return payroll.LineItem{}, fmt.Errorf("get active loan: %w", err)
	}

	return s.engine.Compute(ComputeInput{
		Employee:        emp,
		Period:          p,
		AbsenceCount:    absences,
		Rates:           rates,
		LoanInstallment: installment,
	})
}

// GetLineItem implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetLineItem(ctx context.Context, id string) (payroll.LineItemResponse, error) {
	item, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.LineItemResponse{}, err
	}
	return payroll.MapToResponse(item), nil
}

// ListByPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, periodID string) ([]payroll.LineItemResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return payroll.MapToResponses(items), nil
}
