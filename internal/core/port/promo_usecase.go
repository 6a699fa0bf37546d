package port

import (
	"context"
	"errors"
	"time"

	"promo-engine/internal/core/domain"
)

// ErrDaysOutOfRange is returned by OfferAnalytics when the requested window
// is outside [1, 365] days.
var ErrDaysOutOfRange = errors.New("days must be between 1 and 365")

// PromoUseCase defines the business operations exposed by the promo engine.
// This is the primary port into the application domain. Mock implementations
// can be generated from this interface for testing.
type PromoUseCase interface {
	// SelectPromo picks an eligible offer by weighted random draw and one of
	// its approved variations uniformly, and builds the outbound tracking
	// link. It returns nil when no eligible content exists; that is a normal
	// steady-state condition, not an error. Only infrastructure failures
	// return an error.
	SelectPromo(ctx context.Context, now time.Time) (*SelectionResponse, error)

	// TrackImpression validates the referenced ids and records one
	// impression, atomically maintaining the variation and offer counters.
	TrackImpression(ctx context.Context, in ImpressionInput) error

	// TrackClick records one click. OfferID in the input is optional; when
	// zero it is resolved from the variation's parent offer.
	TrackClick(ctx context.Context, in ClickInput) error

	// OfferAnalytics returns rollups and a dense daily time series for one
	// offer over the trailing window of the given number of days.
	OfferAnalytics(ctx context.Context, offerID int64, days int) (*AnalyticsResponse, error)

	// GetOffer returns one offer, or nil when unknown.
	GetOffer(ctx context.Context, id int64) (*domain.Offer, error)
	// ListOffers returns all offers for the dashboard read surface.
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	// ListVariations returns all variations of an offer.
	ListVariations(ctx context.Context, offerID int64) ([]domain.Variation, error)
}

// SelectionResponse is the payload the newsletter generator consumes. It is
// a DTO used by the HTTP layer and carries no domain behaviour.
type SelectionResponse struct {
	OfferID     int64  `json:"offer_id"`
	OfferName   string `json:"offer_name"`
	OfferType   string `json:"offer_type"`
	Text        string `json:"text"`
	CTA         string `json:"cta"`
	Link        string `json:"link"`
	VariationID int64  `json:"variation_id"`
}

// ImpressionInput carries one impression to be recorded. SourceHash is the
// only form in which a caller-supplied source identifier can travel past the
// HTTP boundary.
type ImpressionInput struct {
	OfferID          int64
	VariationID      int64
	NewsletterSendID string
	SubscriberCount  int
	SourceHash       domain.SourceHash
}

// ClickInput carries one click to be recorded. OfferID zero means "resolve
// from the variation", which lets the redirect handler send only the
// variation id it extracted from the URL.
type ClickInput struct {
	VariationID int64
	OfferID     int64
	UserAgent   string
	Referrer    string
	UTMSource   string
	SourceHash  domain.SourceHash
}

// VariationAnalytics is one ranked entry of the per-variation breakdown.
type VariationAnalytics struct {
	VariationID    int64   `json:"variation_id"`
	TextPreview    string  `json:"text_preview"`
	Tone           string  `json:"tone"`
	LengthCategory string  `json:"length_category"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	CTR            float64 `json:"ctr"`
	Rank           int     `json:"performance_rank"`
}

// DailyTrend is one day of the dense time series. Days without events carry
// zero counts rather than being omitted.
type DailyTrend struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// AnalyticsResponse aggregates an offer's performance for the dashboard.
type AnalyticsResponse struct {
	OfferID          int64                `json:"offer_id"`
	OfferName        string               `json:"offer_name"`
	OfferType        string               `json:"offer_type"`
	StartDate        string               `json:"start_date"`
	EndDate          string               `json:"end_date"`
	TotalImpressions int64                `json:"total_impressions"`
	TotalClicks      int64                `json:"total_clicks"`
	OverallCTR       float64              `json:"overall_ctr"`
	Variations       []VariationAnalytics `json:"variations"`
	DailyTrends      []DailyTrend         `json:"daily_trends"`
}
