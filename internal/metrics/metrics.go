package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the promo engine. The server
// registers them on the default registry and exposes them on /metrics; tests
// pass an isolated registry.
type Metrics struct {
	// Selection metrics
	SelectionsServed      prometheus.Counter
	SelectionsUnavailable prometheus.Counter

	// Tracking metrics
	ImpressionsTracked prometheus.Counter
	ClicksTracked      prometheus.Counter
	TrackingRejected   *prometheus.CounterVec
	TrackingErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// HTTP metrics
	RequestDuration *prometheus.HistogramVec
}

// New creates all metrics under the given namespace and registers them on
// reg.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SelectionsServed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_served_total",
			Help:      "Promo selections returned to the newsletter generator",
		}),
		SelectionsUnavailable: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_unavailable_total",
			Help:      "Selection requests answered with no eligible content",
		}),
		ImpressionsTracked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impressions_tracked_total",
			Help:      "Impression events recorded",
		}),
		ClicksTracked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_tracked_total",
			Help:      "Click events recorded",
		}),
		TrackingRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_rejected_total",
			Help:      "Tracking calls rejected for referencing unknown ids",
		}, []string{"event"}),
		TrackingErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_errors_total",
			Help:      "Tracking calls that failed on the store",
		}, []string{"event"}),
		RateLimitHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_hits_total",
			Help:      "Requests rejected by the rate limiter",
		}, []string{"route"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}
