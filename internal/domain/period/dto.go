package period

import (
	"github.com/nominave/nomina-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	Type      string `json:"type"`       // "weekly" | "biweekly" | "monthly"
	StartDate string `json:"start_date"` // "YYYY-MM-DD"
	EndDate   string `json:"end_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(TypeWeekly), string(TypeBiweekly), string(TypeMonthly)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be weekly, biweekly or monthly"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SuggestEndDateRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
}

type PeriodResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	Days        int     `json:"days"`
	DaysWorked  int     `json:"days_worked"`
	DaysResting int     `json:"days_resting"`
	ClosedAt    *string `json:"closed_at,omitempty"`
}

type SuggestEndDateResponse struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
