package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nominave/nomina-backend-go/internal/domain/payroll"
	"github.com/nominave/nomina-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	RunPeriod(w http.ResponseWriter, r *http.Request)
	GetLineItem(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) RunPeriod(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.RunPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if len(result.Failures) > 0 {
		response.SuccessWithMessage(w, "Payroll computed with failures; period stays open", result)
		return
	}
	response.SuccessWithMessage(w, "Payroll computed", result)
}

func (h *payrollHandlerImpl) GetLineItem(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetLineItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListByPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
