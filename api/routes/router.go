package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/southerntents/quote-backend/api/controllers"
	"github.com/southerntents/quote-backend/api/middleware"
	"github.com/southerntents/quote-backend/api/responses"
	"github.com/southerntents/quote-backend/internal/quote"
	"github.com/southerntents/quote-backend/pkg/config"
	pkgerrors "github.com/southerntents/quote-backend/pkg/errors"
	"github.com/southerntents/quote-backend/pkg/logger"
	"github.com/southerntents/quote-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	quoteService quote.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), nil, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	policy := middleware.NewSubmissionRateLimitPolicy(
		cfg.RateLimit.Window,
		cfg.RateLimit.IPLimit,
		cfg.RateLimit.EmailLimit,
	)
	// Keep a nil *redis.Client out of the interface values so the limiter
	// and the readiness probe treat the backend as absent.
	limiter := middleware.SubmissionRateLimit(policy, nil, logg)
	var readinessPinger redis.Pinger
	if redisClient != nil {
		limiter = middleware.SubmissionRateLimit(policy, redisClient, logg)
		readinessPinger = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readinessPinger))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.With(limiter).Post("/quote", controllers.QuoteSubmit(quoteService, logg))
		r.Options("/quote", controllers.QuotePreflight())
	})

	return r
}
