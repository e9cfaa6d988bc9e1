package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yobeidat/obeidat-motors-backend/api/controllers"
	"github.com/yobeidat/obeidat-motors-backend/api/middleware"
	"github.com/yobeidat/obeidat-motors-backend/api/responses"
	carsvc "github.com/yobeidat/obeidat-motors-backend/internal/cars"
	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
	"github.com/yobeidat/obeidat-motors-backend/pkg/db"
	pkgerrors "github.com/yobeidat/obeidat-motors-backend/pkg/errors"
	"github.com/yobeidat/obeidat-motors-backend/pkg/logger"
	"github.com/yobeidat/obeidat-motors-backend/pkg/metrics"
	"github.com/yobeidat/obeidat-motors-backend/pkg/types"
)

// NewRouter assembles the dealership API router. redisPinger may be nil when
// the cache is not configured; registry may be nil to disable /metrics.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger db.Pinger,
	redisPinger db.Pinger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	carService carsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.CORS(cfg.CORS))
	if httpMetrics != nil {
		r.Use(middleware.Metrics(httpMetrics))
	}

	r.Get("/health/live", controllers.HealthLive(cfg))
	r.Get("/health/ready", controllers.HealthReady(cfg, logg, dbPinger, redisPinger))

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.Health())

		r.Route("/cars", func(r chi.Router) {
			r.Get("/", controllers.ListCars(carService, logg))
			r.Post("/", controllers.CreateCar(carService, logg))
			r.Get("/{carId}", controllers.GetCar(carService, logg))
			r.Put("/{carId}", controllers.UpdateCar(carService, logg))
			r.Delete("/{carId}", controllers.DeleteCar(carService, logg))
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "resource not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteSuccessStatus(w, http.StatusMethodNotAllowed, types.APIError{Message: "method not allowed"})
	})

	return r
}
