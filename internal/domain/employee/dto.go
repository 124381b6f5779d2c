package employee

import (
	"github.com/nominave/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Cedula        string           `json:"cedula"`
	Position      *string          `json:"position,omitempty"`
	MonthlySalary decimal.Decimal  `json:"monthly_salary"`
	NFCTagID      *string          `json:"nfc_tag_id,omitempty"`
	HireDate      string           `json:"hire_date"` // "YYYY-MM-DD"
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidCedula(r.Cedula) {
		errs = append(errs, validator.ValidationError{Field: "cedula", Message: "is not a valid cedula"})
	}
	if r.MonthlySalary.IsNegative() || r.MonthlySalary.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string
	FirstName     *string          `json:"first_name,omitempty"`
	LastName      *string          `json:"last_name,omitempty"`
	Position      *string          `json:"position,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	NFCTagID      *string          `json:"nfc_tag_id,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MonthlySalary != nil && !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Cedula        string          `json:"cedula"`
	Position      *string         `json:"position,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	NFCTagID      *string         `json:"nfc_tag_id,omitempty"`
	IsActive      bool            `json:"is_active"`
	HireDate      string          `json:"hire_date"`
}
