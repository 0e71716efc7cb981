package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/peopleperf/dailyowo/internal/http/budget"
	"github.com/peopleperf/dailyowo/internal/http/export"
	"github.com/peopleperf/dailyowo/internal/http/importcsv"
	"github.com/peopleperf/dailyowo/internal/http/insights"
	"github.com/peopleperf/dailyowo/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	budgetsV1 *budget.Handler,
	insightsV1 *insights.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/insights", insightsV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
