package controllers

import (
	"net/http"

	"github.com/voltkart/storefront-backend/api/responses"
	"github.com/voltkart/storefront-backend/pkg/config"
	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
	"github.com/voltkart/storefront-backend/pkg/logger"
	"github.com/voltkart/storefront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Voltkart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies optional dependencies. A nil pinger means the
// dependency is not configured and is skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Voltkart-Env", cfg.App.Env)

		checks := map[string]string{}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
			checks["redis"] = "ok"
		}

		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}
