package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aerolinehq/ndc-backend/api/controllers"
	"github.com/aerolinehq/ndc-backend/api/middleware"
	"github.com/aerolinehq/ndc-backend/api/responses"
	"github.com/aerolinehq/ndc-backend/internal/identity"
	"github.com/aerolinehq/ndc-backend/internal/pricing"
	"github.com/aerolinehq/ndc-backend/internal/shopping"
	"github.com/aerolinehq/ndc-backend/pkg/config"
	"github.com/aerolinehq/ndc-backend/pkg/db"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
	"github.com/aerolinehq/ndc-backend/pkg/metrics"
	"github.com/aerolinehq/ndc-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	dbP db.Pinger,
	redisClient *redis.Client,
	shoppingService *shopping.Service,
	pricingService *pricing.Service,
	identityService *identity.Service,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, httpMetrics),
	)

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteMethodNotAllowed(req.Context(), logg, w, allowedMethods(req.URL.Path))
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "resource not found"))
	})

	r.Post("/AirShoppingRQ", controllers.AirShopping(shoppingService, logg))
	r.Post("/OfferPriceRQ", controllers.OfferPrice(pricingService, logg))

	r.Route("/api/v1/auth", func(r chi.Router) {
		signInLimit := middleware.RateLimit(
			"sign_in",
			redisClient,
			cfg.RateLimit.SignInLimit,
			cfg.RateLimit.SignInWindow,
			logg,
		)
		r.With(signInLimit).Post("/sign-in", controllers.SignIn(identityService, logg))
		r.Post("/verify", controllers.SignInVerify(identityService, logg))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": dbP,
			"redis":    redisClient,
		}))
	})

	if registry != nil {
		r.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)
	}

	return r
}

// allowedMethods maps a path to the verbs it serves, for the Allow header on
// 405 responses. chi does not expose the matched route's method set here.
func allowedMethods(path string) string {
	switch {
	case strings.HasPrefix(path, "/health"), path == "/metrics":
		return http.MethodGet
	default:
		return http.MethodPost
	}
}
