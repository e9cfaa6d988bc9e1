package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/yobeidat/obeidat-motors-backend/api/responses"
	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
	"github.com/yobeidat/obeidat-motors-backend/pkg/logger"
	"github.com/yobeidat/obeidat-motors-backend/pkg/types"
)

type pinger interface {
	Ping(context.Context) error
}

// Health handles GET /api/health, the storefront's availability probe.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, types.Health{Status: "ok"})
	}
}

// HealthLive reports process liveness without touching dependencies.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ObeidatMotors-Env", cfg.App.Env)
		responses.WriteSuccess(w, types.Health{Status: "live"})
	}
}

// HealthReady verifies the database (and redis, when wired) are reachable.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP pinger, redisP pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ObeidatMotors-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(ctx, "readiness: database unreachable", err)
				}
				writeUnavailable(w)
				return
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(ctx, "readiness: redis unreachable", err)
				}
				writeUnavailable(w)
				return
			}
		}

		responses.WriteSuccess(w, types.Health{Status: "ready"})
	}
}

func writeUnavailable(w http.ResponseWriter) {
	responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, types.Health{Status: "unavailable"})
}
