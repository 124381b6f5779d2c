package loan

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominave/nomina-backend-go/internal/domain/employee"
	"github.com/nominave/nomina-backend-go/internal/domain/loan"
)

type fakeLoanRepo struct {
	loans map[string]loan.Loan
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[string]loan.Loan)}
}

func (r *fakeLoanRepo) Create(_ context.Context, l loan.Loan) (loan.Loan, error) {
	r.loans[l.ID] = l
	return l, nil
}

func (r *fakeLoanRepo) GetByID(_ context.Context, id string) (loan.Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	return l, nil
}

func (r *fakeLoanRepo) GetActiveByEmployee(_ context.Context, employeeID string) (loan.Loan, error) {
	for _, l := range r.loans {
		if l.EmployeeID == employeeID && (l.Status == loan.StatusPending || l.Status == loan.StatusApproved) {
			return l, nil
		}
	}
	return loan.Loan{}, loan.ErrLoanNotFound
}

func (r *fakeLoanRepo) List(_ context.Context, employeeID *string) ([]loan.Loan, error) {
	var result []loan.Loan
	for _, l := range r.loans {
		if employeeID == nil || l.EmployeeID == *employeeID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (r *fakeLoanRepo) UpdateStatus(_ context.Context, id string, status loan.Status) (loan.Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	l.Status = status
	now := time.Now().UTC()
	l.DecidedAt = &now
	r.loans[id] = l
	return l, nil
}

func (r *fakeLoanRepo) RecordPaymentTx(_ context.Context, _ pgx.Tx, payment loan.InstallmentPayment) error {
	l, ok := r.loans[payment.LoanID]
	if !ok {
		return loan.ErrLoanNotFound
	}
	l.Balance = l.Balance.Sub(payment.Amount)
	if !l.Balance.IsPositive() {
		l.Balance = decimal.Zero
		l.Status = loan.StatusLiquidated
	}
	r.loans[payment.LoanID] = l
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByNFCTag(_ context.Context, tagID string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.NFCTagID != nil && *emp.NFCTagID == tagID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.IsActive {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, includeInactive bool) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.IsActive || includeInactive {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) Deactivate(_ context.Context, id string) error {
	emp, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = false
	r.employees[id] = emp
	return nil
}

func activeEmployee() employee.Employee {
	return employee.Employee{
		ID:            "e1",
		FirstName:     "Carlos",
		LastName:      "Rodríguez",
		Cedula:        "V-15678234",
		MonthlySalary: decimal.NewFromInt(900),
		IsActive:      true,
	}
}

func TestCreateLoan(t *testing.T) {
	svc := NewLoanService(newFakeLoanRepo(), newFakeEmployeeRepo(activeEmployee()))

	resp, err := svc.Create(context.Background(), loan.CreateLoanRequest{
		EmployeeID:          "e1",
		Principal:           decimal.NewFromInt(500),
		BiweeklyInstallment: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(500)), "balance starts at the principal")
}

func TestCreateLoanRejectsInactiveEmployee(t *testing.T) {
	emp := activeEmployee()
	emp.IsActive = false
	svc := NewLoanService(newFakeLoanRepo(), newFakeEmployeeRepo(emp))

	_, err := svc.Create(context.Background(), loan.CreateLoanRequest{
		EmployeeID:          "e1",
		Principal:           decimal.NewFromInt(500),
		BiweeklyInstallment: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestCreateLoanRejectsSecondActiveLoan(t *testing.T) {
	svc := NewLoanService(newFakeLoanRepo(), newFakeEmployeeRepo(activeEmployee()))
	ctx := context.Background()

	req := loan.CreateLoanRequest{
		EmployeeID:          "e1",
		Principal:           decimal.NewFromInt(500),
		BiweeklyInstallment: decimal.NewFromInt(50),
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, loan.ErrActiveLoanExists)
}

func TestLoanTransitions(t *testing.T) {
	type step struct {
		action  func(loan.LoanService, context.Context, string) (loan.LoanResponse, error)
		wantErr bool
	}
	approve := func(s loan.LoanService, ctx context.Context, id string) (loan.LoanResponse, error) { return s.Approve(ctx, id) }
	reject := func(s loan.LoanService, ctx context.Context, id string) (loan.LoanResponse, error) { return s.Reject(ctx, id) }
	liquidate := func(s loan.LoanService, ctx context.Context, id string) (loan.LoanResponse, error) { return s.Liquidate(ctx, id) }

	tests := []struct {
		name  string
		steps []step
		want  string
	}{
		{
			name:  "pending to approved to liquidated",
			steps: []step{{approve, false}, {liquidate, false}},
			want:  "liquidated",
		},
		{
			name:  "pending to rejected",
			steps: []step{{reject, false}},
			want:  "rejected",
		},
		{
			name:  "pending cannot be liquidated",
			steps: []step{{liquidate, true}},
			want:  "pending",
		},
		{
			name:  "approved cannot be rejected",
			steps: []step{{approve, false}, {reject, true}},
			want:  "approved",
		},
		{
			name:  "rejected is terminal",
			steps: []step{{reject, false}, {approve, true}},
			want:  "rejected",
		},
		{
			name:  "liquidated is terminal",
			steps: []step{{approve, false}, {liquidate, false}, {approve, true}},
			want:  "liquidated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLoanService(newFakeLoanRepo(), newFakeEmployeeRepo(activeEmployee()))
			ctx := context.Background()

			created, err := svc.Create(ctx, loan.CreateLoanRequest{
				EmployeeID:          "e1",
				Principal:           decimal.NewFromInt(500),
				BiweeklyInstallment: decimal.NewFromInt(50),
			})
			require.NoError(t, err)

			for _, s := range tt.steps {
				_, err := s.action(svc, ctx, created.ID)
				if s.wantErr {
					assert.ErrorIs(t, err, loan.ErrInvalidTransition)
				} else {
					require.NoError(t, err)
				}
			}

			final, err := svc.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, final.Status)
		})
	}
}
