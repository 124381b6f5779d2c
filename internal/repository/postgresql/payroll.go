package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nominave/nomina-backend-go/internal/domain/payroll"
	"github.com/nominave/nomina-backend-go/internal/pkg/database"
)

const lineItemColumns = `
	p.id, p.period_id, p.employee_id, p.period_type,
	p.base_salary, p.days_worked, p.days_resting, p.attendance_bonus,
	p.absence_count, p.seguro_social, p.rpe, p.lph, p.absence_deduction,
	p.loan_installment, p.total_deductions, p.net_pay, p.computed_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.cedula
`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanLineItem(row pgx.Row) (payroll.LineItem, error) {
	var item payroll.LineItem
	err := row.Scan(
		&item.ID,
		&item.PeriodID,
		&item.EmployeeID,
		&item.PeriodType,
		&item.BaseSalary,
		&item.DaysWorked,
		&item.DaysResting,
		&item.AttendanceBonus,
		&item.AbsenceCount,
		&item.SeguroSocial,
		&item.RPE,
		&item.LPH,
		&item.AbsenceDeduction,
		&item.LoanInstallment,
		&item.TotalDeductions,
		&item.NetPay,
		&item.ComputedAt,
		&item.EmployeeName,
		&item.EmployeeCedula,
	)
	return item, err
}

// ReplaceForPeriod implements payroll.PayrollRepository. A new run fully
// supersedes the previous one: old items for the period are deleted and the
// new set inserted inside one transaction.
func (r *payrollRepositoryImpl) ReplaceForPeriod(ctx context.Context, periodID string, items []payroll.LineItem) ([]payroll.LineItem, error) {
	err := WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM payroll_line_items WHERE period_id = $1`, periodID); err != nil {
			return fmt.Errorf("failed to delete previous line items: %w", err)
		}

		insert := `
			INSERT INTO payroll_line_items (
				id, period_id, employee_id, period_type,
				base_salary, days_worked, days_resting, attendance_bonus,
				absence_count, seguro_social, rpe, lph, absence_deduction,
				loan_installment, total_deductions, net_pay, computed_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`
		for _, item := range items {
			_, err := tx.Exec(ctx, insert,
				item.ID, item.PeriodID, item.EmployeeID, item.PeriodType,
				item.BaseSalary, item.DaysWorked, item.DaysResting, item.AttendanceBonus,
				item.AbsenceCount, item.SeguroSocial, item.RPE, item.LPH, item.AbsenceDeduction,
				item.LoanInstallment, item.TotalDeductions, item.NetPay, item.ComputedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert line item for employee %s: %w", item.EmployeeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.ListByPeriod(ctx, periodID)
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineItemColumns + `
		FROM payroll_line_items p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	result, err := scanLineItem(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.LineItem{}, payroll.ErrLineItemNotFound
	}
	if err != nil {
		return payroll.LineItem{}, fmt.Errorf("failed to get line item: %w", err)
	}

	return result, nil
}

// ListByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByPeriod(ctx context.Context, periodID string) ([]payroll.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineItemColumns + `
		FROM payroll_line_items p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.period_id = $1
		ORDER BY employee_name
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list line items: %w", err)
	}
	defer rows.Close()

	var items []payroll.LineItem
	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CountByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CountByPeriod(ctx context.Context, periodID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_line_items WHERE period_id = $1`, periodID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count line items: %w", err)
	}
	return count, nil
}
