package loan

import "context"

type LoanService interface {
	Create(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	Get(ctx context.Context, id string) (LoanResponse, error)
	List(ctx context.Context, employeeID *string) ([]LoanResponse, error)
	Approve(ctx context.Context, id string) (LoanResponse, error)
	Reject(ctx context.Context, id string) (LoanResponse, error)
	Liquidate(ctx context.Context, id string) (LoanResponse, error)
}
