package http

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterConfig carries the settings the router needs from the application config
type RouterConfig struct {
	AllowedOrigins []string
	LogLevel       slog.Level
}

// NewLogger returns the ECS-formatted JSON logger shared by the request logger and the services
func NewLogger(out io.Writer, env, version string, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env != "production")
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-recap"),
		slog.String("version", version),
		slog.String("env", env),
	)
}

func NewRouter(cfg RouterConfig, logger *slog.Logger, attendanceHandler AttendanceHandler, employeeHandler EmployeeHandler, dashboardHandler DashboardHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/summaries", attendanceHandler.Summaries)
			r.Get("/date", attendanceHandler.ByDate)
		})

		r.Route("/employees/{id}", func(r chi.Router) {
			r.Get("/", employeeHandler.Get)
			r.Get("/attendance", employeeHandler.Attendance)
		})

		r.Get("/dashboard", dashboardHandler.GetDashboard)
	})
	return r
}
