package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nominave/nomina-backend-go/internal/domain/period"
	"github.com/nominave/nomina-backend-go/internal/pkg/database"
)

const periodColumns = `id, type, start_date, end_date, status, created_at, closed_at`

type periodRepositoryImpl struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepositoryImpl{db: db}
}

func scanPeriod(row pgx.Row) (period.Period, error) {
	var p period.Period
	err := row.Scan(
		&p.ID,
		&p.Type,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.CreatedAt,
		&p.ClosedAt,
	)
	return p, err
}

// Create implements period.PeriodRepository.
func (r *periodRepositoryImpl) Create(ctx context.Context, p period.Period) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (id, type, start_date, end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + periodColumns

	result, err := scanPeriod(q.QueryRow(ctx, query, p.ID, p.Type, p.StartDate, p.EndDate, p.Status))
	if err != nil {
		return period.Period{}, fmt.Errorf("failed to create period: %w", err)
	}

	return result, nil
}

// GetByID implements period.PeriodRepository.
func (r *periodRepositoryImpl) GetByID(ctx context.Context, id string) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1`

	result, err := scanPeriod(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return period.Period{}, period.ErrPeriodNotFound
	}
	if err != nil {
		return period.Period{}, fmt.Errorf("failed to get period: %w", err)
	}

	return result, nil
}

// List implements period.PeriodRepository.
func (r *periodRepositoryImpl) List(ctx context.Context) ([]period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []period.Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// GetOpen implements period.PeriodRepository.
func (r *periodRepositoryImpl) GetOpen(ctx context.Context) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE status = 'open' LIMIT 1`

	result, err := scanPeriod(q.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return period.Period{}, period.ErrPeriodNotFound
	}
	if err != nil {
		return period.Period{}, fmt.Errorf("failed to get open period: %w", err)
	}

	return result, nil
}

// HasOverlap implements period.PeriodRepository.
func (r *periodRepositoryImpl) HasOverlap(ctx context.Context, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_periods
			WHERE start_date <= $2 AND end_date >= $1
		)
	`

	var overlaps bool
	if err := q.QueryRow(ctx, query, start, end).Scan(&overlaps); err != nil {
		return false, fmt.Errorf("failed to check period overlap: %w", err)
	}
	return overlaps, nil
}

// CloseTx implements period.PeriodRepository.
func (r *periodRepositoryImpl) CloseTx(ctx context.Context, tx pgx.Tx, id string, closedAt time.Time) error {
	query := `
		UPDATE payroll_periods
		SET status = 'closed', closed_at = $2
		WHERE id = $1 AND status = 'open'
	`

	tag, err := tx.Exec(ctx, query, id, closedAt)
	if err != nil {
		return fmt.Errorf("failed to close period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return period.ErrPeriodAlreadyClosed
	}
	return nil
}
