package http

import (
	"log/slog"

	"github.com/MyResearchRoom/mrrhr/internal/handler/http/middleware"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTService jwt.Service
	Logger     *slog.Logger

	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Expense    ExpenseHandler
	Payslip    PayslipHandler
	Holiday    HolidayHandler

	FrontendURL string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(deps.Logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.RefreshToken)
			r.Post("/logout", deps.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", deps.Employee.List)
					r.Post("/", deps.Employee.Onboard)
					r.Get("/{employeeId}", deps.Employee.Get)
					r.Delete("/{employeeId}", deps.Employee.Deactivate)
					r.Get("/{employeeId}/attendance", deps.Attendance.EmployeeMonthLog)
					r.Get("/{employeeId}/payslips", deps.Payslip.EmployeeSlips)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", deps.Attendance.CheckIn)
				r.Post("/check-out", deps.Attendance.CheckOut)
				r.Get("/me", deps.Attendance.MyMonthLog)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/daily", deps.Attendance.DailyLog)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", deps.Leave.Apply)
				r.Get("/me", deps.Leave.MyLeaves)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/pending", deps.Leave.Pending)
					r.Patch("/{leaveId}/review", deps.Leave.Review)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Get("/", deps.Payroll.MonthlySummary)
				r.Get("/stats", deps.Payroll.Stats)
				r.Get("/stats/current", deps.Payroll.CurrentStats)
				r.Get("/runs", deps.Payroll.PaidRuns)
				r.Post("/runs", deps.Payroll.Pays)

				r.Route("/employees/{employeeId}", func(r chi.Router) {
					r.Get("/", deps.Payroll.Detail)
					r.Get("/history", deps.Payroll.StructureHistory)
					r.Post("/structure", deps.Payroll.ReviseStructure)
				})
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", deps.Expense.Submit)
				r.Get("/me", deps.Expense.MyClaims)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", deps.Expense.ListByStatus)
					r.Patch("/{claimId}/review", deps.Expense.Review)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/me", deps.Payslip.MySlips)
				r.Get("/{slipId}/download", deps.Payslip.Download)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", deps.Payslip.Generate)
					r.Patch("/{slipId}/publish", deps.Payslip.Publish)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", deps.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", deps.Holiday.Create)
					r.Put("/{holidayId}", deps.Holiday.Update)
					r.Delete("/{holidayId}", deps.Holiday.Delete)
				})
			})
		})
	})

	return r
}
