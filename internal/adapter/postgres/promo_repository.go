package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// PromoRepository implements port.PromoRepository using pgxpool for
// PostgreSQL. Counter maintenance relies on single-statement atomic
// increments inside the same transaction as the event insert, so concurrent
// trackers never lose updates.
type PromoRepository struct {
	pool *pgxpool.Pool
}

// NewPromoRepository returns a new repository instance.
func NewPromoRepository(pool *pgxpool.Pool) *PromoRepository {
	return &PromoRepository{pool: pool}
}

const offerColumns = `
    id, name, description, offer_type, destination_url, slug, status,
    start_date, end_date, priority, weight,
    total_impressions, total_clicks, ctr, created_at, updated_at`

const variationColumns = `
    id, offer_id, text_content, cta_text, tone, length_category, approved,
    impressions, clicks, ctr, created_at, updated_at`

func scanOffer(row pgx.CollectableRow) (domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(
		&o.ID, &o.Name, &o.Description, &o.OfferType, &o.DestinationURL,
		&o.Slug, &o.Status, &o.StartDate, &o.EndDate, &o.Priority, &o.Weight,
		&o.TotalImpressions, &o.TotalClicks, &o.CTR, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func scanVariation(row pgx.CollectableRow) (domain.Variation, error) {
	var v domain.Variation
	err := row.Scan(
		&v.ID, &v.OfferID, &v.TextContent, &v.CTAText, &v.Tone,
		&v.LengthCategory, &v.Approved, &v.Impressions, &v.Clicks, &v.CTR,
		&v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

// ListEligibleOffers returns offers that are active, inside their optional
// scheduling window, and have at least one approved variation.
func (r *PromoRepository) ListEligibleOffers(ctx context.Context, now time.Time) ([]domain.Offer, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+offerColumns+`
        FROM offers o
        WHERE o.status = 'active'
          AND (o.start_date IS NULL OR o.start_date <= $1)
          AND (o.end_date IS NULL OR o.end_date >= $1)
          AND EXISTS (
              SELECT 1 FROM variations v
              WHERE v.offer_id = o.id AND v.approved
          )`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOffer)
}

// ListApprovedVariations returns the approved variations of an offer.
func (r *PromoRepository) ListApprovedVariations(ctx context.Context, offerID int64) ([]domain.Variation, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+variationColumns+`
        FROM variations
        WHERE offer_id = $1 AND approved
        ORDER BY id`, offerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanVariation)
}

// RecordImpression validates the referenced ids, inserts the event row and
// bumps the variation and parent offer counters, all in one transaction.
func (r *PromoRepository) RecordImpression(ctx context.Context, ev *domain.ImpressionEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var parentID int64
	err = tx.QueryRow(ctx, `SELECT offer_id FROM variations WHERE id = $1`, ev.VariationID).Scan(&parentID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrVariationNotFound
		return err
	}
	if err != nil {
		return err
	}
	if parentID != ev.OfferID {
		err = port.ErrVariationMismatch
		return err
	}

	err = tx.QueryRow(ctx, `
        INSERT INTO impression_events
            (offer_id, variation_id, newsletter_send_id, source_hash, subscriber_count)
        VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, 0))
        RETURNING id, tracked_at`,
		ev.OfferID, ev.VariationID, ev.NewsletterSendID, string(ev.SourceHash), ev.SubscriberCount,
	).Scan(&ev.ID, &ev.TrackedAt)
	if err != nil {
		return err
	}

	if err = r.bumpImpressionCounters(ctx, tx, ev.OfferID, ev.VariationID); err != nil {
		return err
	}
	return nil
}

// RecordClick behaves like RecordImpression for clicks, resolving the parent
// offer when the event carries none.
func (r *PromoRepository) RecordClick(ctx context.Context, ev *domain.ClickEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var parentID int64
	err = tx.QueryRow(ctx, `SELECT offer_id FROM variations WHERE id = $1`, ev.VariationID).Scan(&parentID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrVariationNotFound
		return err
	}
	if err != nil {
		return err
	}
	if ev.OfferID == 0 {
		ev.OfferID = parentID
	} else if ev.OfferID != parentID {
		err = port.ErrVariationMismatch
		return err
	}

	err = tx.QueryRow(ctx, `
        INSERT INTO click_events
            (offer_id, variation_id, source_hash, user_agent, referrer, utm_source)
        VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
        RETURNING id, clicked_at`,
		ev.OfferID, ev.VariationID, string(ev.SourceHash), ev.UserAgent, ev.Referrer, ev.UTMSource,
	).Scan(&ev.ID, &ev.ClickedAt)
	if err != nil {
		return err
	}

	if err = r.bumpClickCounters(ctx, tx, ev.OfferID, ev.VariationID); err != nil {
		return err
	}
	return nil
}

// bumpImpressionCounters increments the denormalized impression counters and
// recomputes CTR. Each UPDATE is a single atomic statement; the CTR is
// clamped to 100 because a click may commit before its impression does.
func (r *PromoRepository) bumpImpressionCounters(ctx context.Context, tx pgx.Tx, offerID, variationID int64) error {
	_, err := tx.Exec(ctx, `
        UPDATE variations
        SET impressions = impressions + 1,
            ctr = LEAST(round(clicks::numeric / (impressions + 1) * 100, 2), 100),
            updated_at = now()
        WHERE id = $1`, variationID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        UPDATE offers
        SET total_impressions = total_impressions + 1,
            ctr = LEAST(round(total_clicks::numeric / (total_impressions + 1) * 100, 2), 100),
            updated_at = now()
        WHERE id = $1`, offerID)
	return err
}

func (r *PromoRepository) bumpClickCounters(ctx context.Context, tx pgx.Tx, offerID, variationID int64) error {
	_, err := tx.Exec(ctx, `
        UPDATE variations
        SET clicks = clicks + 1,
            ctr = CASE WHEN impressions > 0
                  THEN LEAST(round((clicks + 1)::numeric / impressions * 100, 2), 100)
                  ELSE 0 END,
            updated_at = now()
        WHERE id = $1`, variationID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        UPDATE offers
        SET total_clicks = total_clicks + 1,
            ctr = CASE WHEN total_impressions > 0
                  THEN LEAST(round((total_clicks + 1)::numeric / total_impressions * 100, 2), 100)
                  ELSE 0 END,
            updated_at = now()
        WHERE id = $1`, offerID)
	return err
}

// GetOffer returns an offer by id, or nil when it does not exist.
func (r *PromoRepository) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+offerColumns+` FROM offers WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectOneRow(rows, scanOffer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOffers returns all offers ordered by priority, then recency.
func (r *PromoRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+offerColumns+`
        FROM offers
        ORDER BY priority DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOffer)
}

// ListVariations returns all variations of an offer, approved or not.
func (r *PromoRepository) ListVariations(ctx context.Context, offerID int64) ([]domain.Variation, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+variationColumns+`
        FROM variations
        WHERE offer_id = $1
        ORDER BY id`, offerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanVariation)
}

// VariationStats returns the approved, shown-at-least-once variations of an
// offer ordered for ranking: best CTR first, ties broken by impression count
// (the higher-confidence estimate wins), then id for stability.
func (r *PromoRepository) VariationStats(ctx context.Context, offerID int64) ([]domain.Variation, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+variationColumns+`
        FROM variations
        WHERE offer_id = $1 AND approved AND impressions > 0
        ORDER BY ctr DESC, impressions DESC, id`, offerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanVariation)
}

// DailyEventCounts buckets the offer's raw events by their derived date
// columns over [from, to]. Bucketing on tracked_date/clicked_date hits the
// (offer_id, date) indexes instead of recomputing dates from timestamps.
func (r *PromoRepository) DailyEventCounts(ctx context.Context, offerID int64, from, to time.Time) ([]port.DailyCount, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT COALESCE(i.day, c.day) AS day,
               COALESCE(i.n, 0) AS impressions,
               COALESCE(c.n, 0) AS clicks
        FROM (
            SELECT tracked_date AS day, count(*) AS n
            FROM impression_events
            WHERE offer_id = $1 AND tracked_date BETWEEN $2 AND $3
            GROUP BY tracked_date
        ) i
        FULL OUTER JOIN (
            SELECT clicked_date AS day, count(*) AS n
            FROM click_events
            WHERE offer_id = $1 AND clicked_date BETWEEN $2 AND $3
            GROUP BY clicked_date
        ) c ON i.day = c.day
        ORDER BY day`, offerID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DailyCount, error) {
		var c port.DailyCount
		err := row.Scan(&c.Date, &c.Impressions, &c.Clicks)
		return c, err
	})
}

// Ping verifies store connectivity.
func (r *PromoRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
