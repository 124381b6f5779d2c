package deduction

import "context"

type RateRepository interface {
	Create(ctx context.Context, rate Rate) (Rate, error)
	GetByID(ctx context.Context, id string) (Rate, error)
	GetByCode(ctx context.Context, code Code) (Rate, error)
	List(ctx context.Context, activeOnly bool) ([]Rate, error)
	Update(ctx context.Context, rate Rate) (Rate, error)
	Delete(ctx context.Context, id string) error
}
