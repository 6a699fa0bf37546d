package port

import (
	"context"
	"errors"
	"time"

	"promo-engine/internal/core/domain"
)

// Reference validation failures surfaced by tracking ingest. The tracking
// endpoints are called by unauthenticated automated callers, so a bad id is
// an expected condition and maps to a 400 at the HTTP boundary, never a
// crash.
var (
	ErrOfferNotFound     = errors.New("offer not found")
	ErrVariationNotFound = errors.New("variation not found")
	ErrVariationMismatch = errors.New("variation does not belong to offer")
)

// DailyCount is one bucket of the per-day event rollup, keyed by the derived
// date column of the event tables.
type DailyCount struct {
	Date        time.Time
	Impressions int64
	Clicks      int64
}

// PromoRepository defines the persistence layer for the promo engine. It is
// an outbound port in hexagonal architecture. Implementations must update
// counters atomically with the event insert and never lose increments under
// concurrent writers.
type PromoRepository interface {
	// ListEligibleOffers returns offers that are active, inside their
	// optional scheduling window at now, and have at least one approved
	// variation. An empty slice is a normal outcome.
	ListEligibleOffers(ctx context.Context, now time.Time) ([]domain.Offer, error)
	// ListApprovedVariations returns the approved variations of an offer.
	ListApprovedVariations(ctx context.Context, offerID int64) ([]domain.Variation, error)

	// RecordImpression validates the referenced ids, inserts the event row
	// and increments the variation and parent offer counters in one
	// transaction. Returns ErrVariationNotFound or ErrVariationMismatch on
	// bad references.
	RecordImpression(ctx context.Context, ev *domain.ImpressionEvent) error
	// RecordClick behaves like RecordImpression for clicks. When ev.OfferID
	// is zero it is resolved from the variation's parent offer and written
	// back to ev before the row is stored.
	RecordClick(ctx context.Context, ev *domain.ClickEvent) error

	// GetOffer returns an offer by id, or nil when it does not exist.
	GetOffer(ctx context.Context, id int64) (*domain.Offer, error)
	// ListOffers returns all offers ordered by priority desc, created_at desc.
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	// ListVariations returns all variations of an offer, approved or not.
	ListVariations(ctx context.Context, offerID int64) ([]domain.Variation, error)

	// VariationStats returns approved variations of an offer that have been
	// shown at least once, ordered by ctr desc, impressions desc, id asc.
	VariationStats(ctx context.Context, offerID int64) ([]domain.Variation, error)
	// DailyEventCounts buckets the offer's raw events by their derived date
	// column over [from, to]. Days without events are absent from the
	// result; the caller densifies the series.
	DailyEventCounts(ctx context.Context, offerID int64, from, to time.Time) ([]DailyCount, error)

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error
}
