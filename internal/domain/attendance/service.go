package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordDay stores one day's raw clock data for an employee
	RecordDay(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// Justify overrides a record's derived status with a justification
	Justify(ctx context.Context, req JustifyRecordRequest) (RecordResponse, error)

	// GetRecord retrieves a single record with its derived classification
	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// ListRecords retrieves records with filters, each with its classification
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordResponse, error)

	// AbsenceCount derives the number of absences for an employee in a date range
	AbsenceCount(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}
