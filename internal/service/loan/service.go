package loan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nominave/nomina-backend-go/internal/domain/employee"
	"github.com/nominave/nomina-backend-go/internal/domain/loan"
)

type LoanServiceImpl struct {
	loanRepo     loan.LoanRepository
	employeeRepo employee.EmployeeRepository
}

func NewLoanService(loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository) loan.LoanService {
	return &LoanServiceImpl{
		loanRepo:     loanRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements loan.LoanService.
func (s *LoanServiceImpl) Create(ctx context.Context, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if !emp.IsActive {
		return loan.LoanResponse{}, employee.ErrEmployeeInactive
	}

	// One pending-or-approved loan per employee at a time.
	if _, err := s.loanRepo.GetActiveByEmployee(ctx, req.EmployeeID); err == nil {
		return loan.LoanResponse{}, loan.ErrActiveLoanExists
	} else if !errors.Is(err, loan.ErrLoanNotFound) {
		return loan.LoanResponse{}, err
	}

	created, err := s.loanRepo.Create(ctx, loan.Loan{
		ID:                  uuid.NewString(),
		EmployeeID:          req.EmployeeID,
		Principal:           req.Principal,
		BiweeklyInstallment: req.BiweeklyInstallment,
		Balance:             req.Principal,
		Status:              loan.StatusPending,
	})
	if err != nil {
		return loan.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	return toResponse(created), nil
}

// Get implements loan.LoanService.
func (s *LoanServiceImpl) Get(ctx context.Context, id string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	return toResponse(l), nil
}

// List implements loan.LoanService.
func (s *LoanServiceImpl) List(ctx context.Context, employeeID *string) ([]loan.LoanResponse, error) {
	loans, err := s.loanRepo.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		result = append(result, toResponse(l))
	}
	return result, nil
}

// Approve implements loan.LoanService.
func (s *LoanServiceImpl) Approve(ctx context.Context, id string) (loan.LoanResponse, error) {
	return s.transition(ctx, id, loan.StatusApproved)
}

// Reject implements loan.LoanService.
func (s *LoanServiceImpl) Reject(ctx context.Context, id string) (loan.LoanResponse, error) {
	return s.transition(ctx, id, loan.StatusRejected)
}

// Liquidate implements loan.LoanService.
func (s *LoanServiceImpl) Liquidate(ctx context.Context, id string) (loan.LoanResponse, error) {
	return s.transition(ctx, id, loan.StatusLiquidated)
}

func (s *LoanServiceImpl) transition(ctx context.Context, id string, target loan.Status) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	if !l.Status.CanTransition(target) {
		return loan.LoanResponse{}, fmt.Errorf("%w: %s -> %s", loan.ErrInvalidTransition, l.Status, target)
	}

	updated, err := s.loanRepo.UpdateStatus(ctx, id, target)
	if err != nil {
		return loan.LoanResponse{}, fmt.Errorf("update loan status: %w", err)
	}

	return toResponse(updated), nil
}

func toResponse(l loan.Loan) loan.LoanResponse {
	var decidedAt *string
	if l.DecidedAt != nil {
		str := l.DecidedAt.Format("2006-01-02T15:04:05Z07:00")
		decidedAt = &str
	}

	employeeName := ""
	if l.EmployeeName != nil {
		employeeName = *l.EmployeeName
	}

	return loan.LoanResponse{
		ID:                  l.ID,
		EmployeeID:          l.EmployeeID,
		EmployeeName:        employeeName,
		Principal:           l.Principal.Round(2),
		BiweeklyInstallment: l.BiweeklyInstallment.Round(2),
		Balance:             l.Balance.Round(2),
		Status:              string(l.Status),
		DecidedAt:           decidedAt,
	}
}
