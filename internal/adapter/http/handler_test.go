package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	"promo-engine/internal/config/configs"
	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
	"promo-engine/internal/core/port/mocks"
	"promo-engine/internal/metrics"
	"promo-engine/internal/ratelimit"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newTestHandler(t *testing.T, svc port.PromoUseCase, opts ...func(*testOptions)) *Handler {
	t.Helper()
	o := testOptions{
		pinger: pingerFunc(func(context.Context) error { return nil }),
	}
	for _, opt := range opts {
		opt(&o)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New("test", prometheus.NewRegistry())
	return NewHandler(svc, o.pinger, logger, m, o.limiter, o.limits, o.token)
}

type testOptions struct {
	pinger  Pinger
	limiter *ratelimit.Limiter
	limits  configs.Promo
	token   string
}

func withToken(token string) func(*testOptions) {
	return func(o *testOptions) { o.token = token }
}

func withPinger(p Pinger) func(*testOptions) {
	return func(o *testOptions) { o.pinger = p }
}

func withLimiter(l *ratelimit.Limiter, limits configs.Promo) func(*testOptions) {
	return func(o *testOptions) {
		o.limiter = l
		o.limits = limits
	}
}

func TestSelectEndpoint(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		SelectPromo(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&port.SelectionResponse{
			OfferID:     4,
			OfferName:   "VPN deal",
			OfferType:   "affiliate",
			Text:        "Protect your inbox.",
			CTA:         "Get the deal",
			Link:        "/vpn-deal?utm_source=newsletter&promo_var=11",
			VariationID: 11,
		}, nil)

	h := newTestHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/promo/select-random", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp port.SelectionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OfferID != 4 || resp.VariationID != 11 {
		t.Errorf("response %+v, want offer 4 variation 11", resp)
	}
}

// TestSelectEndpointUnavailable ensures the "nothing to serve" state maps to
// 503 so the newsletter generator can skip the promo section.
func TestSelectEndpointUnavailable(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		SelectPromo(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	h := newTestHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/promo/select-random", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d, want 503", rec.Code)
	}
}

// TestTrackImpressionEndpoint verifies the request is decoded and the raw ip
// address is hashed before it reaches the usecase.
func TestTrackImpressionEndpoint(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		TrackImpression(mock.Anything, port.ImpressionInput{
			OfferID:          4,
			VariationID:      11,
			NewsletterSendID: "send-42",
			SubscriberCount:  1500,
			SourceHash:       domain.HashSource("192.0.2.9"),
		}).
		Return(nil)

	body := `{"offer_id":4,"variation_id":11,"newsletter_send_id":"send-42",
		"subscriber_count":1500,"ip_address":"192.0.2.9"}`
	h := newTestHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/api/v1/promo/track-impression", strings.NewReader(body)))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204: %s", rec.Code, rec.Body.String())
	}
}

func TestTrackImpressionBadReference(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		TrackImpression(mock.Anything, mock.AnythingOfType("port.ImpressionInput")).
		Return(port.ErrVariationNotFound)

	body := `{"offer_id":4,"variation_id":999}`
	h := newTestHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/api/v1/promo/track-impression", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestTrackImpressionInvalidJSON(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	h := newTestHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/api/v1/promo/track-impression", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestTrackClickEndpoint(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		TrackClick(mock.Anything, port.ClickInput{
			VariationID: 11,
			UserAgent:   "Mozilla/5.0",
			UTMSource:   "newsletter",
			SourceHash:  domain.HashSource("192.0.2.9"),
		}).
		Return(nil)

	body := `{"variation_id":11,"user_agent":"Mozilla/5.0",
		"utm_source":"newsletter","ip_address":"192.0.2.9"}`
	h := newTestHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/api/v1/promo/track-click", strings.NewReader(body)))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyticsRequiresAuth(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	h := newTestHandler(t, svc, withToken("secret"))

	// No Authorization header.
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/promo/analytics/1", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want 401", rec.Code)
	}

	// Wrong token.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/promo/analytics/1", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token: status %d, want 401", rec.Code)
	}
}

// TestAnalyticsNoTokenConfigured ensures an empty configured token closes
// the dashboard routes instead of leaving them open.
func TestAnalyticsNoTokenConfigured(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	h := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/promo/analytics/1", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		OfferAnalytics(mock.Anything, int64(9), 7).
		Return(&port.AnalyticsResponse{OfferID: 9, OfferName: "VPN deal"}, nil)

	h := newTestHandler(t, svc, withToken("secret"))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/promo/analytics/9?days=7", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp port.AnalyticsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OfferID != 9 {
		t.Errorf("offer id %d, want 9", resp.OfferID)
	}
}

func TestAnalyticsDaysOutOfRange(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		OfferAnalytics(mock.Anything, int64(9), 400).
		Return(nil, port.ErrDaysOutOfRange)

	h := newTestHandler(t, svc, withToken("secret"))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/promo/analytics/9?days=400", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestAnalyticsUnknownOffer(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		OfferAnalytics(mock.Anything, int64(404), 30).
		Return(nil, port.ErrOfferNotFound)

	h := newTestHandler(t, svc, withToken("secret"))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/promo/analytics/404", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestGetOfferNotFound(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().GetOffer(mock.Anything, int64(77)).Return(nil, nil)

	h := newTestHandler(t, svc, withToken("secret"))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/77", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	svc := mocks.NewMockPromoUseCase(t)

	h := newTestHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthy: status %d, want 200", rec.Code)
	}

	h = newTestHandler(t, svc, withPinger(pingerFunc(func(context.Context) error {
		return context.DeadlineExceeded
	})))
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unhealthy: status %d, want 503", rec.Code)
	}
}

// TestSelectRateLimited exercises the Redis limiter end to end with an
// in-process server.
func TestSelectRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := mocks.NewMockPromoUseCase(t)
	svc.EXPECT().
		SelectPromo(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	h := newTestHandler(t, svc, withLimiter(
		ratelimit.New(client, time.Minute),
		configs.Promo{SelectPerMinute: 2},
	))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/promo/select-random", nil))
		if rec.Code == http.StatusTooManyRequests {
			t.Fatalf("request %d throttled before the limit", i+1)
		}
	}

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/promo/select-random", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status %d, want 429", rec.Code)
	}
}
