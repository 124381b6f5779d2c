package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nominave/nomina-backend-go/internal/domain/loan"
	"github.com/nominave/nomina-backend-go/internal/pkg/database"
)

const loanColumns = `
	l.id, l.employee_id, l.principal, l.biweekly_installment, l.balance,
	l.status, l.requested_at, l.decided_at, l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name
`

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

func scanLoan(row pgx.Row) (loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.Principal,
		&l.BiweeklyInstallment,
		&l.Balance,
		&l.Status,
		&l.RequestedAt,
		&l.DecidedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.EmployeeName,
	)
	return l, err
}

// Create implements loan.LoanRepository.
func (r *loanRepositoryImpl) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO loans (id, employee_id, principal, biweekly_installment, balance, status, requested_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), NOW())
			RETURNING *
		)
		SELECT ` + loanColumns + `
		FROM inserted l
		JOIN employees e ON e.id = l.employee_id
	`

	result, err := scanLoan(q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.Principal, l.BiweeklyInstallment, l.Balance, l.Status,
	))
	if err != nil {
		return loan.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return result, nil
}

// GetByID implements loan.LoanRepository.
func (r *loanRepositoryImpl) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loans l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	result, err := scanLoan(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	if err != nil {
		return loan.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return result, nil
}

// GetActiveByEmployee implements loan.LoanRepository.
func (r *loanRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loans l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1 AND l.status IN ('pending', 'approved')
		ORDER BY l.requested_at DESC
		LIMIT 1
	`

	result, err := scanLoan(q.QueryRow(ctx, query, employeeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	if err != nil {
		return loan.Loan{}, fmt.Errorf("failed to get active loan: %w", err)
	}

	return result, nil
}

// List implements loan.LoanRepository.
func (r *loanRepositoryImpl) List(ctx context.Context, employeeID *string) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loans l
		JOIN employees e ON e.id = l.employee_id
		WHERE $1::text IS NULL OR l.employee_id = $1
		ORDER BY l.requested_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// UpdateStatus implements loan.LoanRepository.
func (r *loanRepositoryImpl) UpdateStatus(ctx context.Context, id string, status loan.Status) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE loans
			SET status = $2, decided_at = NOW(), updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + loanColumns + `
		FROM updated l
		JOIN employees e ON e.id = l.employee_id
	`

	result, err := scanLoan(q.QueryRow(ctx, query, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	if err != nil {
		return loan.Loan{}, fmt.Errorf("failed to update loan status: %w", err)
	}

	return result, nil
}

// RecordPaymentTx implements loan.LoanRepository. The payment row insert and
// the balance decrement ride the caller's transaction; the loan flips to
// liquidated when the balance is exhausted.
func (r *loanRepositoryImpl) RecordPaymentTx(ctx context.Context, tx pgx.Tx, payment loan.InstallmentPayment) error {
	insert := `
		INSERT INTO loan_installment_payments (id, loan_id, period_id, amount, paid_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, insert, payment.ID, payment.LoanID, payment.PeriodID, payment.Amount, payment.PaidAt); err != nil {
		return fmt.Errorf("failed to insert installment payment: %w", err)
	}

	update := `
		UPDATE loans
		SET balance = GREATEST(balance - $2, 0),
		    status = CASE WHEN balance - $2 <= 0 THEN 'liquidated' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, update, payment.LoanID, payment.Amount)
	if err != nil {
		return fmt.Errorf("failed to apply installment to loan balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}
	return nil
}
