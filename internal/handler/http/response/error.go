package response

import (
	"errors"
	"net/http"

	"github.com/nominave/nomina-backend-go/internal/domain/attendance"
	"github.com/nominave/nomina-backend-go/internal/domain/deduction"
	"github.com/nominave/nomina-backend-go/internal/domain/employee"
	"github.com/nominave/nomina-backend-go/internal/domain/loan"
	"github.com/nominave/nomina-backend-go/internal/domain/payroll"
	"github.com/nominave/nomina-backend-go/internal/domain/period"
	"github.com/nominave/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCedulaExists):
		Conflict(w, "Cedula already registered")
	case errors.Is(err, employee.ErrNFCTagExists):
		Conflict(w, "NFC tag already assigned")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrRecordAlreadyExists):
		Conflict(w, "Attendance record already exists for this date")
	case errors.Is(err, attendance.ErrAlreadyJustified):
		Conflict(w, "Attendance record already justified")

	// Period domain errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, period.ErrPeriodOverlaps):
		Conflict(w, "Period overlaps an existing period")
	case errors.Is(err, period.ErrOpenPeriodExists):
		Conflict(w, "An open period already exists")
	case errors.Is(err, period.ErrPeriodAlreadyClosed):
		Conflict(w, "Period is already closed")
	case errors.Is(err, period.ErrInvalidPeriodType),
		errors.Is(err, period.ErrInvalidStartDay),
		errors.Is(err, period.ErrPeriodTooLong):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, period.ErrPeriodNotComputed):
		BadRequest(w, err.Error(), nil)

	// Deduction domain errors
	case errors.Is(err, deduction.ErrRateNotFound):
		NotFound(w, "Deduction rate not found")
	case errors.Is(err, deduction.ErrRateCodeExists):
		Conflict(w, "A rate with this code already exists")
	case errors.Is(err, deduction.ErrRateSetMissing):
		BadRequest(w, err.Error(), nil)

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, loan.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, loan.ErrActiveLoanExists):
		Conflict(w, "Employee already has a pending or approved loan")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrLineItemNotFound):
		NotFound(w, "Payroll line item not found")
	case errors.Is(err, payroll.ErrPeriodClosed):
		Conflict(w, "Period is closed, payroll cannot be computed")
	case errors.Is(err, payroll.ErrUnknownPeriodType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "No active employees to compute payroll for", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
