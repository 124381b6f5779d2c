package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noop(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

type stubEmployeeHandler struct{}

func (stubEmployeeHandler) Create(w http.ResponseWriter, r *http.Request)     { noop(w, r) }
func (stubEmployeeHandler) Get(w http.ResponseWriter, r *http.Request)        { noop(w, r) }
func (stubEmployeeHandler) List(w http.ResponseWriter, r *http.Request)       { noop(w, r) }
func (stubEmployeeHandler) Update(w http.ResponseWriter, r *http.Request)     { noop(w, r) }
func (stubEmployeeHandler) Deactivate(w http.ResponseWriter, r *http.Request) { noop(w, r) }

type stubAttendanceHandler struct{}

func (stubAttendanceHandler) RecordDay(w http.ResponseWriter, r *http.Request) { noop(w, r) }
func (stubAttendanceHandler) Justify(w http.ResponseWriter, r *http.Request)   { noop(w, r) }
func (stubAttendanceHandler) Get(w http.ResponseWriter, r *http.Request)       { noop(w, r) }
func (stubAttendanceHandler) List(w http.ResponseWriter, r *http.Request)      { noop(w, r) }

type stubPeriodHandler struct{}

func (stubPeriodHandler) Create(w http.ResponseWriter, r *http.Request)         { noop(w, r) }
func (stubPeriodHandler) Get(w http.ResponseWriter, r *http.Request)            { noop(w, r) }
func (stubPeriodHandler) List(w http.ResponseWriter, r *http.Request)           { noop(w, r) }
func (stubPeriodHandler) SuggestEndDate(w http.ResponseWriter, r *http.Request) { noop(w, r) }
func (stubPeriodHandler) Close(w http.ResponseWriter, r *http.Request)          { noop(w, r) }

type stubPayrollHandler struct{}

func (stubPayrollHandler) RunPeriod(w http.ResponseWriter, r *http.Request)    { noop(w, r) }
func (stubPayrollHandler) GetLineItem(w http.ResponseWriter, r *http.Request)  { noop(w, r) }
func (stubPayrollHandler) ListByPeriod(w http.ResponseWriter, r *http.Request) { noop(w, r) }

type stubDeductionHandler struct{}

func (stubDeductionHandler) Create(w http.ResponseWriter, r *http.Request) { noop(w, r) }
func (stubDeductionHandler) List(w http.ResponseWriter, r *http.Request)   { noop(w, r) }
func (stubDeductionHandler) Update(w http.ResponseWriter, r *http.Request) { noop(w, r) }
func (stubDeductionHandler) Delete(w http.ResponseWriter, r *http.Request) { noop(w, r) }

type stubLoanHandler struct{}

func (stubLoanHandler) Create(w http.ResponseWriter, r *http.Request)    { noop(w, r) }
func (stubLoanHandler) Get(w http.ResponseWriter, r *http.Request)       { noop(w, r) }
func (stubLoanHandler) List(w http.ResponseWriter, r *http.Request)      { noop(w, r) }
func (stubLoanHandler) Approve(w http.ResponseWriter, r *http.Request)   { noop(w, r) }
func (stubLoanHandler) Reject(w http.ResponseWriter, r *http.Request)    { noop(w, r) }
func (stubLoanHandler) Liquidate(w http.ResponseWriter, r *http.Request) { noop(w, r) }

func newStubRouter() http.Handler {
	return NewRouter(
		"test",
		stubEmployeeHandler{},
		stubAttendanceHandler{},
		stubPeriodHandler{},
		stubPayrollHandler{},
		stubDeductionHandler{},
		stubLoanHandler{},
	)
}

func TestRouterRoutes(t *testing.T) {
	router := newStubRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK}, // heartbeat
		{http.MethodGet, "/api/v1/employees", http.StatusNoContent},
		{http.MethodPost, "/api/v1/employees", http.StatusNoContent},
		{http.MethodGet, "/api/v1/employees/e1", http.StatusNoContent},
		{http.MethodPost, "/api/v1/attendances", http.StatusNoContent},
		{http.MethodPost, "/api/v1/attendances/a1/justify", http.StatusNoContent},
		{http.MethodGet, "/api/v1/periods/suggest-end", http.StatusNoContent},
		{http.MethodPost, "/api/v1/periods/p1/close", http.StatusNoContent},
		{http.MethodPost, "/api/v1/periods/p1/payroll", http.StatusNoContent},
		{http.MethodGet, "/api/v1/periods/p1/payroll", http.StatusNoContent},
		{http.MethodGet, "/api/v1/deduction-rates", http.StatusNoContent},
		{http.MethodPost, "/api/v1/loans/l1/approve", http.StatusNoContent},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
