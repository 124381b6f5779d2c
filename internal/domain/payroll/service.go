package payroll

import "context"

type PayrollService interface {
	// RunPeriod computes and persists a line item for every active employee
	// in the period. One employee's failure is recorded and does not abort
	// the batch; the period stays open if any employee failed.
	RunPeriod(ctx context.Context, periodID string) (RunPayrollResponse, error)

	GetLineItem(ctx context.Context, id string) (LineItemResponse, error)
	ListByPeriod(ctx context.Context, periodID string) ([]LineItemResponse, error)
}
