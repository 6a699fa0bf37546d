package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promo-engine/internal/config/configs"
	"promo-engine/internal/core/port"
	"promo-engine/internal/metrics"
	"promo-engine/internal/ratelimit"
)

// Pinger verifies store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the inbound HTTP adapter. It holds the usecase for business
// logic, a structured logger, the Prometheus metrics and the optional Redis
// rate limiter. Routes are registered on a chi.Router.
//
// The selection and tracking routes are deliberately unauthenticated: they
// are called by the newsletter generator and the redirect handler, both of
// which treat this service as fire-and-forget. The analytics and offer read
// routes expose business performance data and sit behind a bearer token.
type Handler struct {
	svc     port.PromoUseCase
	pinger  Pinger
	logger  *slog.Logger
	metrics *metrics.Metrics
	limiter *ratelimit.Limiter // nil disables rate limiting
	limits  configs.Promo
	token   string
	started time.Time
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	svc port.PromoUseCase,
	pinger Pinger,
	logger *slog.Logger,
	m *metrics.Metrics,
	limiter *ratelimit.Limiter,
	limits configs.Promo,
	authToken string,
) *Handler {
	h := &Handler{
		svc:     svc,
		pinger:  pinger,
		logger:  logger,
		metrics: m,
		limiter: limiter,
		limits:  limits,
		token:   authToken,
		started: time.Now(),
	}

	r := chi.NewRouter()
	r.Use(h.requestID, h.logging, h.measure)

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Open surface: newsletter generator and redirect handler.
		r.With(h.rateLimit("select", h.limits.SelectPerMinute)).
			Get("/promo/select-random", h.handleSelectRandom)
		r.With(h.rateLimit("impression", h.limits.ImpressionPerMinute)).
			Post("/promo/track-impression", h.handleTrackImpression)
		r.With(h.rateLimit("click", h.limits.ClickPerMinute)).
			Post("/promo/track-click", h.handleTrackClick)

		// Authenticated dashboard surface.
		r.Group(func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "OPTIONS"},
				AllowedHeaders: []string{"Authorization", "Content-Type"},
			}))
			r.Use(h.requireAuth)
			r.Get("/promo/analytics/{offerID}", h.handleAnalytics)
			r.Get("/offers", h.handleListOffers)
			r.Get("/offers/{offerID}", h.handleGetOffer)
			r.Get("/offers/{offerID}/variations", h.handleListVariations)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
