package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/multierr"

	"github.com/carebridge/eldercare-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthDeps lists the backends the readiness probe checks. Redis is nil
// when no limiter store is configured.
type HealthDeps struct {
	DB    pinger
	Redis pinger
}

// Health reports readiness as JSON. Any failing backend flips the status
// to 503 with the aggregated failure detail logged, not exposed.
func Health(deps HealthDeps, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		if deps.DB != nil {
			err = multierr.Append(err, deps.DB.Ping(r.Context()))
		}
		if deps.Redis != nil {
			err = multierr.Append(err, deps.Redis.Ping(r.Context()))
		}

		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "health.check", err)
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
