package payroll

import "context"

type PayrollRepository interface {
	// ReplaceForPeriod deletes any previous run's items for the period and
	// inserts the new set in one transaction.
	ReplaceForPeriod(ctx context.Context, periodID string, items []LineItem) ([]LineItem, error)
	GetByID(ctx context.Context, id string) (LineItem, error)
	ListByPeriod(ctx context.Context, periodID string) ([]LineItem, error)
	CountByPeriod(ctx context.Context, periodID string) (int, error)
}
