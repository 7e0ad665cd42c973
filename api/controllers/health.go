package controllers

import (
	"net/http"

	"github.com/southerntents/quote-backend/api/responses"
	"github.com/southerntents/quote-backend/pkg/config"
	"github.com/southerntents/quote-backend/pkg/logger"
	"github.com/southerntents/quote-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live", "env": cfg.App.Env})
	}
}

// HealthReady reports per-dependency state. SMTP is config-checked only; a
// readiness probe must not burn provider connections on every poll.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]string{
			"smtp": "configured",
		}
		status := http.StatusOK

		if redisPinger == nil {
			components["redis"] = "disabled"
		} else if err := redisPinger.Ping(r.Context()); err != nil {
			components["redis"] = "unreachable"
			status = http.StatusServiceUnavailable
			if logg != nil {
				logg.Error(r.Context(), "readiness redis ping failed", err)
			}
		} else {
			components["redis"] = "ok"
		}

		responses.WriteJSON(w, status, map[string]any{
			"status":     statusWord(status),
			"env":        cfg.App.Env,
			"components": components,
		})
	}
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "ready"
	}
	return "degraded"
}
