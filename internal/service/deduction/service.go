package deduction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nominave/nomina-backend-go/internal/domain/deduction"
)

type RateServiceImpl struct {
	rateRepo deduction.RateRepository
}

func NewRateService(rateRepo deduction.RateRepository) deduction.RateService {
	return &RateServiceImpl{rateRepo: rateRepo}
}

// Create implements deduction.RateService.
func (s *RateServiceImpl) Create(ctx context.Context, req deduction.CreateRateRequest) (deduction.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.RateResponse{}, err
	}

	code := deduction.Code(req.Code)
	if _, err := s.rateRepo.GetByCode(ctx, code); err == nil {
		return deduction.RateResponse{}, deduction.ErrRateCodeExists
	} else if !errors.Is(err, deduction.ErrRateNotFound) {
		return deduction.RateResponse{}, err
	}

	created, err := s.rateRepo.Create(ctx, deduction.Rate{
		ID:       uuid.NewString(),
		Code:     code,
		Name:     req.Name,
		Rate:     req.Rate,
		IsActive: true,
	})
	if err != nil {
		return deduction.RateResponse{}, fmt.Errorf("create rate: %w", err)
	}

	return toResponse(created), nil
}

// List implements deduction.RateService.
func (s *RateServiceImpl) List(ctx context.Context, activeOnly bool) ([]deduction.RateResponse, error) {
	rates, err := s.rateRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]deduction.RateResponse, 0, len(rates))
	for _, rate := range rates {
		result = append(result, toResponse(rate))
	}
	return result, nil
}

// Update implements deduction.RateService.
func (s *RateServiceImpl) Update(ctx context.Context, req deduction.UpdateRateRequest) (deduction.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.RateResponse{}, err
	}

	current, err := s.rateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.RateResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Rate != nil {
		current.Rate = *req.Rate
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	updated, err := s.rateRepo.Update(ctx, current)
	if err != nil {
		return deduction.RateResponse{}, fmt.Errorf("update rate: %w", err)
	}

	return toResponse(updated), nil
}

// Delete implements deduction.RateService.
func (s *RateServiceImpl) Delete(ctx context.Context, id string) error {
	return s.rateRepo.Delete(ctx, id)
}

// ActiveRateSet implements deduction.RateService.
func (s *RateServiceImpl) ActiveRateSet(ctx context.Context) (deduction.RateSet, error) {
	var set deduction.RateSet

	for _, code := range []deduction.Code{deduction.CodeSeguroSocial, deduction.CodeRPE, deduction.CodeLPH} {
		rate, err := s.rateRepo.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, deduction.ErrRateNotFound) {
				return deduction.RateSet{}, fmt.Errorf("%w: %s", deduction.ErrRateSetMissing, code)
			}
			return deduction.RateSet{}, err
		}
		if !rate.IsActive {
			return deduction.RateSet{}, fmt.Errorf("%w: %s is inactive", deduction.ErrRateSetMissing, code)
		}

		switch code {
		case deduction.CodeSeguroSocial:
			set.SeguroSocial = rate.Rate
		case deduction.CodeRPE:
			set.RPE = rate.Rate
		case deduction.CodeLPH:
			set.LPH = rate.Rate
		}
	}

	return set, nil
}

func toResponse(rate deduction.Rate) deduction.RateResponse {
	return deduction.RateResponse{
		ID:       rate.ID,
		Code:     string(rate.Code),
		Name:     rate.Name,
		Rate:     rate.Rate,
		IsActive: rate.IsActive,
	}
}
