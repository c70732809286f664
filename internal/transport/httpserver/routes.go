package httpserver

import (
	"net/http"
	"time"

	"asmabeauty-go/internal/config"
	"asmabeauty-go/internal/transport/httpserver/handler"
	corsmw "asmabeauty-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/prestations", handlers.ListPrestations)
		r.Post("/prestations", handlers.CreatePrestation)
		r.Delete("/prestations/{id}", handlers.DeletePrestation)

		r.Get("/depenses", handlers.ListDepenses)
		r.Post("/depenses", handlers.CreateDepense)
		r.Delete("/depenses/{id}", handlers.DeleteDepense)

		r.Get("/categories", handlers.ListCategories)

		r.Get("/analytics/kpis", handlers.AnalyticsKPIs)
		r.Get("/analytics/repartition", handlers.AnalyticsRepartition)
		r.Get("/analytics/serie", handlers.AnalyticsSerie)
		r.Get("/analytics/recurrence", handlers.AnalyticsRecurrence)

		r.Get("/export/csv", handlers.ExportCSV)
	})

	return r
}
