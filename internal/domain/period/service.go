package period

import "context"

type PeriodService interface {
	// Create validates length, start-day, overlap and single-open rules
	Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)

	Get(ctx context.Context, id string) (PeriodResponse, error)
	List(ctx context.Context) ([]PeriodResponse, error)

	// SuggestEndDate returns the conventional end date for a type and start
	SuggestEndDate(ctx context.Context, req SuggestEndDateRequest) (SuggestEndDateResponse, error)

	// Close transitions the period Open -> Closed once every active employee
	// has a computed line item, recording loan installment payments atomically.
	Close(ctx context.Context, id string) (PeriodResponse, error)
}
