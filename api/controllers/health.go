package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/aerolinehq/ndc-backend/api/responses"
	"github.com/aerolinehq/ndc-backend/pkg/config"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

const readinessTimeout = 3 * time.Second

// Pinger is the reachability check a readiness dependency exposes.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Aeroline-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every backing dependency before reporting ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Aeroline-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" is unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
