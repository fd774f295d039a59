package http

import (
	"log/slog"
	"os"

	"github.com/boxline/boxline-backend-go/internal/config"
	"github.com/boxline/boxline-backend-go/internal/handler/http/middleware"
	"github.com/boxline/boxline-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth          AuthHandler
	Client        ClientHandler
	Quote         QuoteHandler
	Order         OrderHandler
	Manufacturing ManufacturingHandler
	Delivery      DeliveryHandler
	Employee      EmployeeHandler
	TimeRecord    TimeRecordHandler
	Payroll       PayrollHandler
	Dashboard     DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "boxline-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Get("/dashboard", h.Dashboard.GetOverview)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Post("/", h.Client.Create)
				r.Get("/{id}", h.Client.Get)
				r.Put("/{id}", h.Client.Update)
				r.Delete("/{id}", h.Client.Deactivate)
			})

			r.Route("/quotes", func(r chi.Router) {
				r.Get("/", h.Quote.List)
				r.Post("/", h.Quote.Create)
				r.Get("/{id}", h.Quote.Get)
				r.Put("/{id}", h.Quote.Update)
				r.Post("/{id}/send", h.Quote.Send)
				r.Post("/{id}/accept", h.Quote.Accept)
				r.Post("/{id}/reject", h.Quote.Reject)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.Order.List)
				r.Post("/", h.Order.Create)
				r.Get("/{id}", h.Order.Get)
				r.Put("/{id}", h.Order.Update)
				r.Post("/{id}/confirm", h.Order.Confirm)
				r.Post("/{id}/cancel", h.Order.Cancel)
			})

			r.Route("/manufacturing-orders", func(r chi.Router) {
				r.Get("/", h.Manufacturing.List)
				r.Post("/", h.Manufacturing.Create)
				r.Get("/calendar", h.Manufacturing.Calendar)
				r.Get("/{id}", h.Manufacturing.Get)
				r.Put("/{id}/schedule", h.Manufacturing.Schedule)
				r.Post("/{id}/start", h.Manufacturing.Start)
				r.Post("/{id}/complete", h.Manufacturing.Complete)
				r.Post("/{id}/cancel", h.Manufacturing.Cancel)
			})

			r.Route("/deliveries", func(r chi.Router) {
				r.Get("/", h.Delivery.List)
				r.Post("/", h.Delivery.Schedule)
				r.Get("/drivers", h.Delivery.ListDrivers)
				r.Get("/vehicles", h.Delivery.ListVehicles)
				r.Get("/{id}", h.Delivery.Get)
				r.Put("/{id}", h.Delivery.Update)
				r.Post("/{id}/start", h.Delivery.Start)
				r.Post("/{id}/delivered", h.Delivery.MarkDelivered)
				r.Post("/{id}/cancel", h.Delivery.Cancel)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Deactivate)
				})
			})

			r.Route("/time-records", func(r chi.Router) {
				r.Get("/", h.TimeRecord.List)
				r.Get("/{clockNumber}", h.TimeRecord.ListByEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/upload", h.TimeRecord.Upload)
				})
			})

			// Payroll is admin territory end to end
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/periods/resolve", h.Payroll.ResolvePeriods)
				r.Get("/periods", h.Payroll.ListPeriods)
				r.Get("/periods/{id}", h.Payroll.GetPeriod)
				r.Get("/periods/{id}/export/excel", h.Payroll.ExportExcel)
				r.Get("/periods/{id}/export/pdf", h.Payroll.ExportPDF)
				r.Post("/run", h.Payroll.Run)
				r.Post("/commit", h.Payroll.Commit)

				r.Get("/loans", h.Payroll.ListLoans)
				r.Post("/loans", h.Payroll.CreateLoan)

				r.Get("/settings", h.Payroll.GetSettings)
				r.Put("/settings", h.Payroll.UpdateSettings)
			})
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
