package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nominave/nomina-backend-go/internal/config"
	appHTTP "github.com/nominave/nomina-backend-go/internal/handler/http"
	"github.com/nominave/nomina-backend-go/internal/pkg/database"
	"github.com/nominave/nomina-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nominave/nomina-backend-go/internal/service/attendance"
	deductionService "github.com/nominave/nomina-backend-go/internal/service/deduction"
	employeeService "github.com/nominave/nomina-backend-go/internal/service/employee"
	loanService "github.com/nominave/nomina-backend-go/internal/service/loan"
	payrollService "github.com/nominave/nomina-backend-go/internal/service/payroll"
	periodService "github.com/nominave/nomina-backend-go/internal/service/period"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	rateRepo := postgresql.NewRateRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	classifier := attendanceService.NewClassifier(attendanceService.Schedule{
		ExpectedStart: cfg.Schedule.ExpectedStart,
		GraceMinutes:  cfg.Schedule.GraceMinutes,
		FullDayHours:  cfg.Schedule.FullDayHours,
	})
	bonusRate, err := decimal.NewFromString(cfg.Payroll.AttendanceBonusRate)
	if err != nil {
		log.Fatal("Invalid PAYROLL_ATTENDANCE_BONUS_RATE:", err)
	}
	engine := payrollService.NewEngine(bonusRate)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, classifier)
	rateSvc := deductionService.NewRateService(rateRepo)
	loanSvc := loanService.NewLoanService(loanRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(engine, payrollRepo, periodRepo, employeeRepo, loanRepo, rateSvc, attendanceSvc)
	periodSvc := periodService.NewPeriodService(db, periodRepo, payrollRepo, employeeRepo, loanRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	periodHandler := appHTTP.NewPeriodHandler(periodSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	deductionHandler := appHTTP.NewDeductionHandler(rateSvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		employeeHandler,
		attendanceHandler,
		periodHandler,
		payrollHandler,
		deductionHandler,
		loanHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
