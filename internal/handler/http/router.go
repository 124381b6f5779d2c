package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	periodHandler PeriodHandler,
	payrollHandler PayrollHandler,
	deductionHandler DeductionHandler,
	loanHandler LoanHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nomina-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Deactivate)
			})
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.RecordDay)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", attendanceHandler.Get)
				r.Post("/justify", attendanceHandler.Justify)
			})
		})

		r.Route("/periods", func(r chi.Router) {
			r.Get("/", periodHandler.List)
			r.Post("/", periodHandler.Create)
			r.Get("/suggest-end", periodHandler.SuggestEndDate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", periodHandler.Get)
				r.Post("/close", periodHandler.Close)
				r.Post("/payroll", payrollHandler.RunPeriod)
				r.Get("/payroll", payrollHandler.ListByPeriod)
			})
		})

		r.Route("/payroll-items", func(r chi.Router) {
			r.Get("/{id}", payrollHandler.GetLineItem)
		})

		r.Route("/deduction-rates", func(r chi.Router) {
			r.Get("/", deductionHandler.List)
			r.Post("/", deductionHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", deductionHandler.Update)
				r.Delete("/", deductionHandler.Delete)
			})
		})

		r.Route("/loans", func(r chi.Router) {
			r.Get("/", loanHandler.List)
			r.Post("/", loanHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", loanHandler.Get)
				r.Post("/approve", loanHandler.Approve)
				r.Post("/reject", loanHandler.Reject)
				r.Post("/liquidate", loanHandler.Liquidate)
			})
		})
	})

	return r
}
