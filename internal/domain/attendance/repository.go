package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)
	ListByEmployeeDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
	Update(ctx context.Context, rec Record) (Record, error)
	MarkJustified(ctx context.Context, id string, justificationType string) (Record, error)
}
