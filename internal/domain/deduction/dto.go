package deduction

import (
	"github.com/nominave/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRateRequest struct {
	Code string          `json:"code"` // "SSO" | "RPE" | "LPH"
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"` // fraction, e.g. 0.04
}

func (r *CreateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Code, []string{string(CodeSeguroSocial), string(CodeRPE), string(CodeLPH)}) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be SSO, RPE or LPH"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Rate.IsNegative() || r.Rate.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be a fraction between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRateRequest struct {
	ID       string
	Name     *string          `json:"name,omitempty"`
	Rate     *decimal.Decimal `json:"rate,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r *UpdateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rate != nil && (r.Rate.IsNegative() || r.Rate.GreaterThan(decimal.NewFromInt(1))) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be a fraction between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateResponse struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Rate     decimal.Decimal `json:"rate"`
	IsActive bool            `json:"is_active"`
}
