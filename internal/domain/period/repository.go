package period

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type PeriodRepository interface {
	Create(ctx context.Context, p Period) (Period, error)
	GetByID(ctx context.Context, id string) (Period, error)
	List(ctx context.Context) ([]Period, error)
	GetOpen(ctx context.Context) (Period, error)
	HasOverlap(ctx context.Context, start, end time.Time) (bool, error)
	// CloseTx marks the period closed inside an existing transaction so the
	// caller can commit it atomically with the loan installment payments.
	CloseTx(ctx context.Context, tx pgx.Tx, id string, closedAt time.Time) error
}
