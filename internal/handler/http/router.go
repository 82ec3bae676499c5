package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/identity"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)
					r.Get("/{id}", leaveHandler.GetType)

					// HR only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireHR)
						r.Post("/", leaveHandler.CreateType)
						r.Put("/{id}", leaveHandler.UpdateType)
					})
				})

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/my", leaveHandler.GetMyRequests)
					r.Get("/{id}", leaveHandler.GetRequest)
					r.Patch("/{id}", leaveHandler.AmendRequest)
					r.Post("/{id}/cancel", leaveHandler.CancelRequest)
					r.Get("/{id}/events", leaveHandler.ListEvents)
					r.Post("/{id}/document", leaveHandler.AttachDocument)

					// Approval chain; per-stage gating happens in the service
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRoles(
							identity.RoleManager,
							identity.RoleGeneralManager,
							identity.RoleDirector,
							identity.RoleHR,
							identity.RoleAdmin,
						))
						r.Get("/", leaveHandler.ListRequests)
						r.Post("/{id}/approve", leaveHandler.Approve)
						r.Post("/{id}/reject", leaveHandler.Reject)
						r.Post("/{id}/request-document", leaveHandler.RequestDocument)
					})
				})

				r.Route("/balances", func(r chi.Router) {
					r.Get("/my", leaveHandler.GetMyBalances)

					// HR only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireHR)
						r.Get("/{employeeID}", leaveHandler.GetEmployeeBalances)
					})
				})

				r.Get("/calendar", leaveHandler.Calendar)
			})

			// Payroll is HR territory end to end
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Route("/periods", func(r chi.Router) {
					r.Post("/", payrollHandler.CreatePeriod)
					r.Get("/", payrollHandler.ListPeriods)
					r.Get("/{id}", payrollHandler.GetPeriod)
					r.Post("/{id}/generate", payrollHandler.GeneratePayslips)
					r.Post("/{id}/complete", payrollHandler.CompletePeriod)
					r.Post("/{id}/cancel", payrollHandler.CancelPeriod)
					r.Get("/{id}/payslips", payrollHandler.ListPayslips)
				})

				r.Route("/payslips", func(r chi.Router) {
					r.Get("/{id}", payrollHandler.GetPayslip)
					r.Get("/{id}/pdf", payrollHandler.DownloadPayslipPDF)
					r.Post("/{id}/pay", payrollHandler.MarkPayslipPaid)
					r.Post("/{id}/cancel", payrollHandler.CancelPayslip)
				})

				r.Route("/salary-structures", func(r chi.Router) {
					r.Post("/", payrollHandler.CreateSalaryStructure)
					r.Get("/{employeeID}", payrollHandler.GetActiveSalaryStructure)
				})

				r.Route("/deduction-types", func(r chi.Router) {
					r.Post("/", payrollHandler.CreateDeductionType)
					r.Get("/", payrollHandler.ListDeductionTypes)
				})

				r.Route("/deductions", func(r chi.Router) {
					r.Post("/", payrollHandler.AssignDeduction)
					r.Delete("/{id}", payrollHandler.UnassignDeduction)
				})
			})

			// Executive rollup
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(
					identity.RoleDirector,
					identity.RoleGeneralManager,
					identity.RoleHR,
					identity.RoleAdmin,
				))
				r.Get("/dashboard/overview", dashboardHandler.Overview)
			})
		})
	})
	return r
}
