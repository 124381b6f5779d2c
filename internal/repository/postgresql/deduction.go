package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nominave/nomina-backend-go/internal/domain/deduction"
	"github.com/nominave/nomina-backend-go/internal/pkg/database"
)

const rateColumns = `id, code, name, rate, is_active, created_at, updated_at`

type rateRepositoryImpl struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) deduction.RateRepository {
	return &rateRepositoryImpl{db: db}
}

func scanRate(row pgx.Row) (deduction.Rate, error) {
	var rate deduction.Rate
	err := row.Scan(
		&rate.ID,
		&rate.Code,
		&rate.Name,
		&rate.Rate,
		&rate.IsActive,
		&rate.CreatedAt,
		&rate.UpdatedAt,
	)
	return rate, err
}

// Create implements deduction.RateRepository.
func (r *rateRepositoryImpl) Create(ctx context.Context, rate deduction.Rate) (deduction.Rate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_rates (id, code, name, rate, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + rateColumns

	result, err := scanRate(q.QueryRow(ctx, query, rate.ID, rate.Code, rate.Name, rate.Rate, rate.IsActive))
	if err != nil {
		if isUniqueViolation(err, "deduction_rates_code_key") {
			return deduction.Rate{}, deduction.ErrRateCodeExists
		}
		return deduction.Rate{}, fmt.Errorf("failed to create deduction rate: %w", err)
	}

	return result, nil
}

// GetByID implements deduction.RateRepository.
func (r *rateRepositoryImpl) GetByID(ctx context.Context, id string) (deduction.Rate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateColumns + ` FROM deduction_rates WHERE id = $1`

	result, err := scanRate(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return deduction.Rate{}, deduction.ErrRateNotFound
	}
	if err != nil {
		return deduction.Rate{}, fmt.Errorf("failed to get deduction rate: %w", err)
	}

	return result, nil
}

// GetByCode implements deduction.RateRepository.
func (r *rateRepositoryImpl) GetByCode(ctx context.Context, code deduction.Code) (deduction.Rate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateColumns + ` FROM deduction_rates WHERE code = $1`

	result, err := scanRate(q.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return deduction.Rate{}, deduction.ErrRateNotFound
	}
	if err != nil {
		return deduction.Rate{}, fmt.Errorf("failed to get deduction rate by code: %w", err)
	}

	return result, nil
}

// List implements deduction.RateRepository.
func (r *rateRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]deduction.Rate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateColumns + ` FROM deduction_rates WHERE is_active OR NOT $1 ORDER BY code`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction rates: %w", err)
	}
	defer rows.Close()

	var rates []deduction.Rate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction rate: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

// Update implements deduction.RateRepository.
func (r *rateRepositoryImpl) Update(ctx context.Context, rate deduction.Rate) (deduction.Rate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deduction_rates
		SET name = $2, rate = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + rateColumns

	result, err := scanRate(q.QueryRow(ctx, query, rate.ID, rate.Name, rate.Rate, rate.IsActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return deduction.Rate{}, deduction.ErrRateNotFound
	}
	if err != nil {
		return deduction.Rate{}, fmt.Errorf("failed to update deduction rate: %w", err)
	}

	return result, nil
}

// Delete implements deduction.RateRepository.
func (r *rateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deduction_rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deduction rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrRateNotFound
	}
	return nil
}
