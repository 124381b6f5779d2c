package payroll

import (
	"github.com/shopspring/decimal"
)

// LineItemResponse carries every figure the payslip layout needs, each
// rounded to 2 places here and nowhere earlier.
type LineItemResponse struct {
	ID             string `json:"id"`
	PeriodID       string `json:"period_id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	EmployeeCedula string `json:"employee_cedula,omitempty"`
	PeriodType     string `json:"period_type"`

	BaseSalary       decimal.Decimal `json:"base_salary"`
	DaysWorked       int             `json:"days_worked"`
	DaysResting      int             `json:"days_resting"`
	AttendanceBonus  decimal.Decimal `json:"attendance_bonus"`
	AbsenceCount     int             `json:"absence_count"`
	SeguroSocial     decimal.Decimal `json:"seguro_social"`
	RPE              decimal.Decimal `json:"rpe"`
	LPH              decimal.Decimal `json:"lph"`
	AbsenceDeduction decimal.Decimal `json:"absence_deduction"`
	LoanInstallment  decimal.Decimal `json:"loan_installment"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetPay           decimal.Decimal `json:"net_pay"`

	ComputedAt string `json:"computed_at"`
}

// ComputeFailure is one employee the batch could not compute.
type ComputeFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Reason       string `json:"reason"`
}

// RunPayrollResponse is the batch result for a period: the items that were
// computed and persisted plus the employees that failed. The period stays
// open whenever Failures is non-empty.
type RunPayrollResponse struct {
	PeriodID string             `json:"period_id"`
	Items    []LineItemResponse `json:"items"`
	Failures []ComputeFailure   `json:"failures,omitempty"`
}

// MapToResponse rounds every monetary field for presentation.
func MapToResponse(item LineItem) LineItemResponse {
	employeeName := ""
	employeeCedula := ""
	if item.EmployeeName != nil {
		employeeName = *item.EmployeeName
	}
	if item.EmployeeCedula != nil {
		employeeCedula = *item.EmployeeCedula
	}

	return LineItemResponse{
		ID:             item.ID,
		PeriodID:       item.PeriodID,
		EmployeeID:     item.EmployeeID,
		EmployeeName:   employeeName,
		EmployeeCedula: employeeCedula,
		PeriodType:     item.PeriodType,

		BaseSalary:       item.BaseSalary.Round(2),
		DaysWorked:       item.DaysWorked,
		DaysResting:      item.DaysResting,
		AttendanceBonus:  item.AttendanceBonus.Round(2),
		AbsenceCount:     item.AbsenceCount,
		SeguroSocial:     item.SeguroSocial.Round(2),
		RPE:              item.RPE.Round(2),
		LPH:              item.LPH.Round(2),
		AbsenceDeduction: item.AbsenceDeduction.Round(2),
		LoanInstallment:  item.LoanInstallment.Round(2),
		TotalDeductions:  item.TotalDeductions.Round(2),
		NetPay:           item.NetPay.Round(2),

		ComputedAt: item.ComputedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func MapToResponses(items []LineItem) []LineItemResponse {
	result := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, MapToResponse(item))
	}
	return result
}
