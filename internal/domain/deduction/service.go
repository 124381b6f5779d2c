package deduction

import "context"

type RateService interface {
	Create(ctx context.Context, req CreateRateRequest) (RateResponse, error)
	List(ctx context.Context, activeOnly bool) ([]RateResponse, error)
	Update(ctx context.Context, req UpdateRateRequest) (RateResponse, error)
	Delete(ctx context.Context, id string) error

	// ActiveRateSet assembles the statutory rates a payroll run needs;
	// fails with ErrRateSetMissing if any of SSO, RPE or LPH is absent.
	ActiveRateSet(ctx context.Context) (RateSet, error)
}
