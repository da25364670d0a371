package http

import (
	"log/slog"
	"os"

	"github.com/bersihkilat/erp-backend-go/internal/domain/user"
	"github.com/bersihkilat/erp-backend-go/internal/handler/http/middleware"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	productionHandler ProductionHandler,
	commissionHandler CommissionHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bersihkilat-erp"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// User directory is admin territory
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Get("/{userID}", userHandler.Get)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Clock)
				r.Get("/my", attendanceHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.ListByDate)
					r.Get("/annulments", attendanceHandler.ListAnnulments)
					r.Post("/{id}/annul", attendanceHandler.Annul)
				})
			})

			r.Route("/production", func(r chi.Router) {
				// Production floor roles record intake
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleProduksi, user.RoleGudang))
					r.Post("/", productionHandler.Create)
				})
				r.Get("/my", productionHandler.ListMine)
			})

			r.Route("/commission", func(r chi.Router) {
				r.Get("/my", commissionHandler.MyPeriodReport)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/rates", commissionHandler.ListRates)
					r.Put("/rates", commissionHandler.UpsertRate)
					r.Get("/users/{userID}", commissionHandler.PeriodReport)
				})
			})

			// Payroll is admin territory
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", payrollHandler.ListPeriod)
				r.Post("/", payrollHandler.Upsert)
				r.Post("/generate", payrollHandler.Generate)
				r.Get("/users/{userID}", payrollHandler.Get)
			})
		})
	})
	return r
}
