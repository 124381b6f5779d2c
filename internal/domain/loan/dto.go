package loan

import (
	"github.com/nominave/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLoanRequest struct {
	EmployeeID          string          `json:"employee_id"`
	Principal           decimal.Decimal `json:"principal"`
	BiweeklyInstallment decimal.Decimal `json:"biweekly_installment"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Principal.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "principal", Message: "must be positive"})
	}
	if !r.BiweeklyInstallment.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "biweekly_installment", Message: "must be positive"})
	}
	if r.BiweeklyInstallment.GreaterThan(r.Principal) {
		errs = append(errs, validator.ValidationError{Field: "biweekly_installment", Message: "must not exceed principal"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	EmployeeName        string          `json:"employee_name,omitempty"`
	Principal           decimal.Decimal `json:"principal"`
	BiweeklyInstallment decimal.Decimal `json:"biweekly_installment"`
	Balance             decimal.Decimal `json:"balance"`
	Status              string          `json:"status"`
	DecidedAt           *string         `json:"decided_at,omitempty"`
}
