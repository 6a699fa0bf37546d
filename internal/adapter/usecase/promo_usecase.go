package usecase

import (
	"context"
	"math"
	"time"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// PromoUseCase provides the selection, tracking and analytics logic for
// promotional content. It orchestrates the domain and the repository to
// implement the port.PromoUseCase interface.
type PromoUseCase struct {
	repo    port.PromoRepository
	baseURL string
	rng     randSource
}

// NewPromoUseCase creates a new usecase with the provided repository. The
// baseURL is prepended to every built link and may be empty for relative
// links.
func NewPromoUseCase(repo port.PromoRepository, baseURL string) *PromoUseCase {
	return &PromoUseCase{repo: repo, baseURL: baseURL, rng: globalRand{}}
}

// SelectPromo picks an eligible offer by weighted random draw, one of its
// approved variations uniformly, and builds the tracking link. A nil
// response means no eligible content exists; the newsletter pipeline treats
// that as "skip the promo section", so it is never an error.
func (u *PromoUseCase) SelectPromo(ctx context.Context, now time.Time) (*port.SelectionResponse, error) {
	eligible, err := u.repo.ListEligibleOffers(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, nil
	}

	i := pickOffer(u.rng, eligible)
	if i < 0 {
		return nil, nil
	}
	offer := eligible[i]

	variations, err := u.repo.ListApprovedVariations(ctx, offer.ID)
	if err != nil {
		return nil, err
	}
	// Eligibility guaranteed at least one approved variation, but the offer
	// may have been edited between the two reads. Degrade to "not
	// available" rather than failing the newsletter.
	j := pickVariation(u.rng, variations)
	if j < 0 {
		return nil, nil
	}
	chosen := variations[j]

	return &port.SelectionResponse{
		OfferID:     offer.ID,
		OfferName:   offer.Name,
		OfferType:   string(offer.OfferType),
		Text:        chosen.TextContent,
		CTA:         chosen.CTAText,
		Link:        BuildLink(u.baseURL, offer, chosen.ID),
		VariationID: chosen.ID,
	}, nil
}

// TrackImpression records one impression. The repository validates the
// referenced ids and maintains the counters atomically with the event
// insert.
func (u *PromoUseCase) TrackImpression(ctx context.Context, in port.ImpressionInput) error {
	if in.OfferID <= 0 {
		return port.ErrOfferNotFound
	}
	if in.VariationID <= 0 {
		return port.ErrVariationNotFound
	}
	ev := &domain.ImpressionEvent{
		OfferID:          in.OfferID,
		VariationID:      in.VariationID,
		NewsletterSendID: in.NewsletterSendID,
		SubscriberCount:  in.SubscriberCount,
		SourceHash:       in.SourceHash,
	}
	return u.repo.RecordImpression(ctx, ev)
}

// TrackClick records one click. When the input carries no offer id the
// repository resolves it from the variation's parent offer, so the redirect
// handler only needs the variation id it extracted from the URL.
func (u *PromoUseCase) TrackClick(ctx context.Context, in port.ClickInput) error {
	if in.VariationID <= 0 {
		return port.ErrVariationNotFound
	}
	ev := &domain.ClickEvent{
		OfferID:     in.OfferID,
		VariationID: in.VariationID,
		UserAgent:   in.UserAgent,
		Referrer:    in.Referrer,
		UTMSource:   in.UTMSource,
		SourceHash:  in.SourceHash,
	}
	return u.repo.RecordClick(ctx, ev)
}

// OfferAnalytics aggregates an offer's performance: totals, the
// per-variation breakdown ranked by CTR, and a dense daily time series over
// the trailing window.
func (u *PromoUseCase) OfferAnalytics(ctx context.Context, offerID int64, days int) (*port.AnalyticsResponse, error) {
	if days < 1 || days > 365 {
		return nil, port.ErrDaysOutOfRange
	}

	offer, err := u.repo.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, port.ErrOfferNotFound
	}

	variations, err := u.repo.VariationStats(ctx, offerID)
	if err != nil {
		return nil, err
	}

	var totalImpressions, totalClicks int64
	ranked := make([]port.VariationAnalytics, 0, len(variations))
	for rank, v := range variations {
		totalImpressions += v.Impressions
		totalClicks += v.Clicks
		ranked = append(ranked, port.VariationAnalytics{
			VariationID:    v.ID,
			TextPreview:    preview(v.TextContent, 100),
			Tone:           v.Tone,
			LengthCategory: v.LengthCategory,
			Impressions:    v.Impressions,
			Clicks:         v.Clicks,
			CTR:            v.CTR,
			Rank:           rank + 1,
		})
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(days - 1))
	counts, err := u.repo.DailyEventCounts(ctx, offerID, start, end)
	if err != nil {
		return nil, err
	}

	return &port.AnalyticsResponse{
		OfferID:          offer.ID,
		OfferName:        offer.Name,
		OfferType:        string(offer.OfferType),
		StartDate:        start.Format(time.DateOnly),
		EndDate:          end.Format(time.DateOnly),
		TotalImpressions: totalImpressions,
		TotalClicks:      totalClicks,
		OverallCTR:       ctr(totalClicks, totalImpressions),
		Variations:       ranked,
		DailyTrends:      densify(counts, start, end),
	}, nil
}

// GetOffer returns one offer, or nil when it does not exist.
func (u *PromoUseCase) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	return u.repo.GetOffer(ctx, id)
}

// ListOffers returns all offers for the dashboard read surface.
func (u *PromoUseCase) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return u.repo.ListOffers(ctx)
}

// ListVariations returns all variations of an offer.
func (u *PromoUseCase) ListVariations(ctx context.Context, offerID int64) ([]domain.Variation, error) {
	return u.repo.ListVariations(ctx, offerID)
}

// densify turns the sparse per-day counts into a contiguous series over
// [start, end], filling missing days with zero counts so chart consumers
// always receive one point per day.
func densify(counts []port.DailyCount, start, end time.Time) []port.DailyTrend {
	byDate := make(map[string]port.DailyCount, len(counts))
	for _, c := range counts {
		byDate[c.Date.Format(time.DateOnly)] = c
	}

	trends := make([]port.DailyTrend, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		c := byDate[key]
		trends = append(trends, port.DailyTrend{
			Date:        key,
			Impressions: c.Impressions,
			Clicks:      c.Clicks,
			CTR:         ctr(c.Clicks, c.Impressions),
		})
	}
	return trends
}

// ctr computes clicks/impressions as a percentage rounded to two decimals.
// Zero impressions yield zero, and a click recorded before its impression
// committed can briefly push the ratio past 100, so the result is clamped.
func ctr(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	v := math.Round(float64(clicks)/float64(impressions)*10000) / 100
	if v > 100 {
		return 100
	}
	return v
}

// preview truncates variation copy for the analytics breakdown.
func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
