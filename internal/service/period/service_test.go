package period

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
	"github.com/nominave/nomina-backend-go/internal/domain/payroll"
	"github.com/nominave/nomina-backend-go/internal/domain/period"
)

type fakePeriodRepo struct {
	periods map[string]period.Period
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{periods: make(map[string]period.Period)}
}

func (r *fakePeriodRepo) Create(_ context.Context, p period.Period) (period.Period, error) {
	r.periods[p.ID] = p
	return p, nil
}

func (r *fakePeriodRepo) GetByID(_ context.Context, id string) (period.Period, error) {
	p, ok := r.periods[id]
	if !ok {
		return period.Period{}, period.ErrPeriodNotFound
	}
	return p, nil
}

func (r *fakePeriodRepo) List(_ context.Context) ([]period.Period, error) {
	result := make([]period.Period, 0, len(r.periods))
	for _, p := range r.periods {
		result = append(result, p)
	}
	return result, nil
}

func (r *fakePeriodRepo) GetOpen(_ context.Context) (period.Period, error) {
	for _, p := range r.periods {
		if p.Status == period.StatusOpen {
			return p, nil
		}
	}
	return period.Period{}, period.ErrPeriodNotFound
}

func (r *fakePeriodRepo) HasOverlap(_ context.Context, start, end time.Time) (bool, error) {
	for _, p := range r.periods {
		if !start.After(p.EndDate) && !end.Before(p.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePeriodRepo) CloseTx(_ context.Context, _ pgx.Tx, id string, closedAt time.Time) error {
	p, ok := r.periods[id]
	if !ok || p.Status != period.StatusOpen {
		return period.ErrPeriodAlreadyClosed
	}
	p.Status = period.StatusClosed
	p.ClosedAt = &closedAt
	r.periods[id] = p
	return nil
}

type fakePayrollRepo struct {
	items map[string][]payroll.LineItem // periodID -> items
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{items: make(map[string][]payroll.LineItem)}
}

func (r *fakePayrollRepo) ReplaceForPeriod(_ context.Context, periodID string, items []payroll.LineItem) ([]payroll.LineItem, error) {
	r.items[periodID] = items
	return items, nil
}

func (r *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.LineItem, error) {
	for _, items := range r.items {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
	}
	return payroll.LineItem{}, payroll.ErrLineItemNotFound
}

func (r *fakePayrollRepo) ListByPeriod(_ context.Context, periodID string) ([]payroll.LineItem, error) {
	return r.items[periodID], nil
}

func (r *fakePayrollRepo) CountByPeriod(_ context.Context, periodID string) (int, error) {
	return len(r.items[periodID]), nil
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

func newTestService(periodRepo *fakePeriodRepo, payrollRepo *fakePayrollRepo, employeeRepo *fakeEmployeeRepo) period.PeriodService {
	return NewPeriodService(nil, periodRepo, payrollRepo, employeeRepo, newFakeLoanRepo())
}

func TestCreatePeriod(t *testing.T) {
	svc := newTestService(newFakePeriodRepo(), newFakePayrollRepo(), newFakeEmployeeRepo())

	resp, err := svc.Create(context.Background(), period.CreatePeriodRequest{
		Type:      "biweekly",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-15",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, 15, resp.Days)
	assert.Equal(t, 10, resp.DaysWorked)
	assert.Equal(t, 5, resp.DaysResting)
}

func TestCreatePeriodStartDayRules(t *testing.T) {
	tests := []struct {
		name      string
		req       period.CreatePeriodRequest
		wantError error
	}{
		{
			name: "biweekly starting mid-quincena",
			req: period.CreatePeriodRequest{
				Type: "biweekly", StartDate: "2025-03-10", EndDate: "2025-03-20",
			},
			wantError: period.ErrInvalidStartDay,
		},
		{
			name: "biweekly starting on day 16",
			req: period.CreatePeriodRequest{
				Type: "biweekly", StartDate: "2025-03-16", EndDate: "2025-03-31",
			},
			wantError: nil,
		},
		{
			name: "monthly not starting on day 1",
			req: period.CreatePeriodRequest{
				Type: "monthly", StartDate: "2025-03-05", EndDate: "2025-03-31",
			},
			wantError: period.ErrInvalidStartDay,
		},
		{
			name: "weekly starting on a Tuesday",
			req: period.CreatePeriodRequest{
				// 2025-03-04 is a Tuesday
				Type: "weekly", StartDate: "2025-03-04", EndDate: "2025-03-10",
			},
			wantError: period.ErrInvalidStartDay,
		},
		{
			name: "weekly starting on a Monday",
			req: period.CreatePeriodRequest{
				Type: "weekly", StartDate: "2025-03-03", EndDate: "2025-03-09",
			},
			wantError: nil,
		},
		{
			name: "biweekly second quincena of a 31-day month",
			req: period.CreatePeriodRequest{
				// 16 calendar days, the longest a quincena gets
				Type: "biweekly", StartDate: "2025-03-16", EndDate: "2025-03-31",
			},
			wantError: nil,
		},
		{
			name: "biweekly spanning beyond its quincena",
			req: period.CreatePeriodRequest{
				Type: "biweekly", StartDate: "2025-03-01", EndDate: "2025-03-20",
			},
			wantError: period.ErrPeriodTooLong,
		},
		{
			name: "weekly spanning more than 7 days",
			req: period.CreatePeriodRequest{
				Type: "weekly", StartDate: "2025-03-03", EndDate: "2025-03-12",
			},
			wantError: period.ErrPeriodTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakePeriodRepo(), newFakePayrollRepo(), newFakeEmployeeRepo())
			_, err := svc.Create(context.Background(), tt.req)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePeriodRejectsSecondOpen(t *testing.T) {
	svc := newTestService(newFakePeriodRepo(), newFakePayrollRepo(), newFakeEmployeeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, period.CreatePeriodRequest{
		Type: "biweekly", StartDate: "2025-03-01", EndDate: "2025-03-15",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, period.CreatePeriodRequest{
		Type: "biweekly", StartDate: "2025-03-16", EndDate: "2025-03-31",
	})
	assert.ErrorIs(t, err, period.ErrOpenPeriodExists)
}

func TestCreatePeriodRejectsOverlap(t *testing.T) {
	repo := newFakePeriodRepo()
	closedAt := time.Now().UTC()
	repo.periods["existing"] = period.Period{
		ID:        "existing",
		Type:      period.TypeBiweekly,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:    period.StatusClosed,
		ClosedAt:  &closedAt,
	}
	svc := newTestService(repo, newFakePayrollRepo(), newFakeEmployeeRepo())

	// Biweekly starting on day 1 again, overlapping the closed quincena.
	_, err := svc.Create(context.Background(), period.CreatePeriodRequest{
		Type: "biweekly", StartDate: "2025-03-01", EndDate: "2025-03-15",
	})
	assert.ErrorIs(t, err, period.ErrPeriodOverlaps)
}

func TestSuggestEndDate(t *testing.T) {
	svc := newTestService(newFakePeriodRepo(), newFakePayrollRepo(), newFakeEmployeeRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     period.SuggestEndDateRequest
		wantEnd string
	}{
		{"weekly adds six days", period.SuggestEndDateRequest{Type: "weekly", StartDate: "2025-03-03"}, "2025-03-09"},
		{"first quincena ends on the 15th", period.SuggestEndDateRequest{Type: "biweekly", StartDate: "2025-03-01"}, "2025-03-15"},
		{"second quincena ends at month end", period.SuggestEndDateRequest{Type: "biweekly", StartDate: "2025-03-16"}, "2025-03-31"},
		{"monthly ends at month end", period.SuggestEndDateRequest{Type: "monthly", StartDate: "2025-02-01"}, "2025-02-28"},
		{"monthly respects leap years", period.SuggestEndDateRequest{Type: "monthly", StartDate: "2024-02-01"}, "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.SuggestEndDate(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnd, resp.EndDate)
		})
	}

	_, err := svc.SuggestEndDate(ctx, period.SuggestEndDateRequest{Type: "daily", StartDate: "2025-03-03"})
	assert.ErrorIs(t, err, period.ErrInvalidPeriodType)
}

// Every suggested end date must survive the creation rules, in particular
// the 16-day second quincena of 31-day months.
func TestSuggestedEndDatePassesValidation(t *testing.T) {
	starts := []struct {
		periodType string
		start      string
	}{
		{"weekly", "2025-03-03"},
		{"biweekly", "2025-02-01"},
		{"biweekly", "2025-02-16"},
		{"biweekly", "2025-03-01"},
		{"biweekly", "2025-03-16"},
		{"biweekly", "2025-04-16"},
		{"monthly", "2025-03-01"},
		{"monthly", "2024-02-01"},
	}

	for _, tt := range starts {
		t.Run(tt.periodType+" "+tt.start, func(t *testing.T) {
			svc := newTestService(newFakePeriodRepo(), newFakePayrollRepo(), newFakeEmployeeRepo())
			ctx := context.Background()

			suggested, err := svc.SuggestEndDate(ctx, period.SuggestEndDateRequest{
				Type:      tt.periodType,
				StartDate: tt.start,
			})
			require.NoError(t, err)

			_, err = svc.Create(ctx, period.CreatePeriodRequest{
				Type:      tt.periodType,
				StartDate: tt.start,
				EndDate:   suggested.EndDate,
			})
			assert.NoError(t, err)
		})
	}
}

func TestCloseRejectsAlreadyClosed(t *testing.T) {
	repo := newFakePeriodRepo()
	closedAt := time.Now().UTC()
	repo.periods["p1"] = period.Period{
		ID:        "p1",
		Type:      period.TypeBiweekly,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:    period.StatusClosed,
		ClosedAt:  &closedAt,
	}
	svc := newTestService(repo, newFakePayrollRepo(), newFakeEmployeeRepo())

	_, err := svc.Close(context.Background(), "p1")
	assert.ErrorIs(t, err, period.ErrPeriodAlreadyClosed)
}

func TestCloseRejectsUncomputedPeriod(t *testing.T) {
	repo := newFakePeriodRepo()
	repo.periods["p1"] = period.Period{
		ID:        "p1",
		Type:      period.TypeBiweekly,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:    period.StatusOpen,
	}
	employeeRepo := newFakeEmployeeRepo(employee.Employee{
		ID:            "e1",
		FirstName:     "María",
		LastName:      "Pérez",
		Cedula:        "V-12345678",
		MonthlySalary: decimal.NewFromInt(1200),
		IsActive:      true,
	})
	svc := newTestService(repo, newFakePayrollRepo(), employeeRepo)

	// No payroll run happened, so the active employee has no line item.
	_, err := svc.Close(context.Background(), "p1")
	assert.ErrorIs(t, err, period.ErrPeriodNotComputed)
}
