package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peoplecore/hr-backend-go/internal/config"
	appHTTP "github.com/peoplecore/hr-backend-go/internal/handler/http"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
	"github.com/peoplecore/hr-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hr-backend-go/internal/pkg/storage"
	"github.com/peoplecore/hr-backend-go/internal/repository/postgresql"
	dashboardService "github.com/peoplecore/hr-backend-go/internal/service/dashboard"
	"github.com/peoplecore/hr-backend-go/internal/service/file"
	"github.com/peoplecore/hr-backend-go/internal/service/leave"
	payrollService "github.com/peoplecore/hr-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolSettings{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	approvalEventRepo := postgresql.NewApprovalEventRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	salaryStructureRepo := postgresql.NewSalaryStructureRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	typeService := leave.NewTypeService(leaveTypeRepo)
	requestService := leave.NewRequestService(db, leaveTypeRepo, leaveRequestRepo, approvalEventRepo, employeeRepo)
	approvalService := leave.NewApprovalService(db, leaveRequestRepo, approvalEventRepo, employeeRepo)
	payrollSvc := payrollService.NewService(
		db,
		periodRepo,
		payslipRepo,
		salaryStructureRepo,
		deductionRepo,
		attendanceRepo,
		leaveRequestRepo,
		employeeRepo,
	)
	dashboardSvc := dashboardService.NewService(dashboardRepo, attendanceRepo, employeeRepo)

	leaveHandler := appHTTP.NewLeaveHandler(typeService, requestService, approvalService, fileService)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, fileService)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(jwtService, leaveHandler, payrollHandler, dashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
