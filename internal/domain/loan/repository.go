package loan

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type LoanRepository interface {
	Create(ctx context.Context, l Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	GetActiveByEmployee(ctx context.Context, employeeID string) (Loan, error)
	List(ctx context.Context, employeeID *string) ([]Loan, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Loan, error)
	// RecordPaymentTx writes one installment payment and decrements the loan
	// balance inside the caller's transaction; flips the loan to liquidated
	// when the balance reaches zero.
	RecordPaymentTx(ctx context.Context, tx pgx.Tx, payment InstallmentPayment) error
}
