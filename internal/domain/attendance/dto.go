package attendance

import (
	"github.com/nominave/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRecordRequest struct {
	EmployeeID        string  `json:"employee_id"`
	Date              string  `json:"date"` // "YYYY-MM-DD"
	ClockIn           *string `json:"clock_in,omitempty"`
	ClockOut          *string `json:"clock_out,omitempty"`
	Justified         bool    `json:"justified,omitempty"`
	JustificationType *string `json:"justification_type,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	// Clock values are deliberately NOT validated here: a malformed reading is
	// still stored and classified as an error status later.

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JustifyRecordRequest struct {
	ID                string
	JustificationType string `json:"justification_type"`
}

func (r *JustifyRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JustificationType) {
		errs = append(errs, validator.ValidationError{Field: "justification_type", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordFilter struct {
	EmployeeID *string
	DateFrom   *string // "YYYY-MM-DD"
	DateTo     *string
	Page       int
	Limit      int
}

type RecordResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name,omitempty"`
	Date              string          `json:"date"`
	ClockIn           *string         `json:"clock_in,omitempty"`
	ClockOut          *string         `json:"clock_out,omitempty"`
	Justified         bool            `json:"justified"`
	JustificationType *string         `json:"justification_type,omitempty"`
	Status            string          `json:"status"`
	HoursWorked       decimal.Decimal `json:"hours_worked"`
	Reason            string          `json:"reason"`
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
