package http

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/biztime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

const (
	appName    = "biztime"
	appVersion = "v1.0.0"
)

// NewLogger builds the JSON slog logger shared by the request logger and the rest of the app.
func NewLogger(w io.Writer, level slog.Level, env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("version", appVersion),
		slog.String("env", env),
	)
}

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, companyHandler CompanyHandler, invoiceHandler InvoiceHandler, healthHandler HealthHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.NotFound(response.RouteNotFound)
	r.MethodNotAllowed(response.MethodNotAllowed)

	r.Get("/health", healthHandler.Check)

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", companyHandler.List)
		r.Post("/", companyHandler.Create)

		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", companyHandler.GetByCode)
			r.Put("/", companyHandler.Update)
			r.Delete("/", companyHandler.Delete)
		})
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", invoiceHandler.List)
		r.Post("/", invoiceHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", invoiceHandler.GetByID)
			r.Put("/", invoiceHandler.Update)
			r.Delete("/", invoiceHandler.Delete)
		})
	})

	return r
}
