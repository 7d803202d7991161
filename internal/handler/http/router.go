package http

import (
	"compress/flate"
	"log/slog"
	"net/http"

	"github.com/fasihgds-afk/activity-detector-backend/internal/config"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/middleware"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/response"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth     AuthHandler
	Config   ConfigHandler
	Report   ReportHandler
	Employee EmployeeHandler
	Activity ActivityHandler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(flate.DefaultCompression, "application/json", "text/plain"))
	r.Use(chiMiddleware.Timeout(cfg.HTTP.RequestTimeout))

	r.Get("/", Banner)
	r.Get("/healthz", Healthz)
	r.Get("/update", UpdateCheck)
	r.Get("/config", h.Config.GetConfig)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Get("/me", h.Auth.Me)
		})
	})

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)

		r.Route("/employees", func(r chi.Router) {
			r.Use(chiMiddleware.SetHeader("Cache-Control", "no-store"))

			r.With(middleware.RequirePermission(user.PermissionReportViewOwn)).Get("/", h.Report.ListEmployees)
			r.With(middleware.RequirePermission(user.PermissionReportExport)).Get("/export", h.Report.ExportEmployees)

			// Superadmin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Delete("/{id}", h.Employee.DeleteEmployee)
			})
		})

		r.Route("/activities", func(r chi.Router) {
			r.Use(middleware.RequirePermission(user.PermissionActivityManage))
			r.Put("/{id}", h.Activity.UpdateActivity)
			r.Put("/{id}/end", h.Activity.EndActivity)
			r.Delete("/{id}", h.Activity.DeleteActivity)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Not found")
	})

	return r
}
