package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	policyHandler PolicyHandler,
	timesheetHandler TimesheetHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/", attendanceHandler.List)
			})

			r.Route("/policy", func(r chi.Router) {
				r.Get("/", policyHandler.Get)
				r.Put("/", policyHandler.Update)

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", policyHandler.ListHolidays)
					r.Post("/", policyHandler.CreateHoliday)
					r.Delete("/{id}", policyHandler.DeleteHoliday)
				})
			})

			r.Route("/timesheet", func(r chi.Router) {
				r.Get("/", timesheetHandler.Compute)

				r.Route("/snapshots", func(r chi.Router) {
					r.Get("/", timesheetHandler.ListSnapshots)
					r.Post("/", timesheetHandler.SaveSnapshot)
					r.Get("/{id}", timesheetHandler.GetSnapshot)
				})
			})
		})
	})
	return r
}
