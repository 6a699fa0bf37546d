package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo offers, variations and tracking events for local
// development and dashboard work.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	offerTypes := []string{"affiliate", "donation", "review"}
	tones := []string{"exciting", "professional", "friendly"}
	lengths := []string{"short", "medium", "long"}

	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Offer %d", i)
		offerType := offerTypes[r.Intn(len(offerTypes))]
		slug := fmt.Sprintf("offer-%d", i)
		start := time.Now().AddDate(0, 0, -30)
		end := time.Now().AddDate(0, 1, 0)
		priority := r.Intn(3)
		weight := 1 + r.Intn(5)
		_, err := db.Exec(ctx, `INSERT INTO offers
    (id, name, description, offer_type, destination_url, slug, status,
     start_date, end_date, priority, weight, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,'active',$7,$8,$9,$10,now(),now()) ON CONFLICT DO NOTHING`,
			i, name, fmt.Sprintf("Demo offer %d", i), offerType,
			fmt.Sprintf("https://example.com/offer/%d", i), slug, start, end, priority, weight)
		if err != nil {
			return err
		}

		for j := 1; j <= 4; j++ {
			varID := (i-1)*4 + j
			_, err = db.Exec(ctx, `INSERT INTO variations
    (id, offer_id, text_content, cta_text, tone, length_category, approved, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) ON CONFLICT DO NOTHING`,
				varID, i,
				fmt.Sprintf("Promo copy %d for offer %d, check this out today.", j, i),
				"Learn more", tones[r.Intn(len(tones))], lengths[r.Intn(len(lengths))],
				j <= 3) // leave one variation pending approval
			if err != nil {
				return err
			}
		}
	}

	// Spread tracking events over the last two weeks so the daily trends
	// chart has something to show.
	for day := 0; day < 14; day++ {
		date := time.Now().AddDate(0, 0, -day)
		sendID := uuid.NewString()
		for n := 0; n < 20+r.Intn(30); n++ {
			varID := int64(r.Intn(15) + 1)
			offerID := (varID-1)/4 + 1
			_, err := db.Exec(ctx, `INSERT INTO impression_events
    (offer_id, variation_id, newsletter_send_id, subscriber_count, tracked_at, tracked_date)
VALUES ($1,$2,$3,$4,$5,$5::date)`, offerID, varID, sendID, 5000, date)
			if err != nil {
				return err
			}
			_, err = db.Exec(ctx, `UPDATE variations
    SET impressions = impressions + 1,
        ctr = LEAST(round(clicks::numeric / (impressions + 1) * 100, 2), 100)
    WHERE id = $1`, varID)
			if err != nil {
				return err
			}
			_, err = db.Exec(ctx, `UPDATE offers
    SET total_impressions = total_impressions + 1,
        ctr = LEAST(round(total_clicks::numeric / (total_impressions + 1) * 100, 2), 100)
    WHERE id = $1`, offerID)
			if err != nil {
				return err
			}

			if r.Intn(10) == 0 {
				_, err = db.Exec(ctx, `INSERT INTO click_events
    (offer_id, variation_id, utm_source, clicked_at, clicked_date)
VALUES ($1,$2,'newsletter',$3,$3::date)`, offerID, varID, date)
				if err != nil {
					return err
				}
				_, err = db.Exec(ctx, `UPDATE variations
    SET clicks = clicks + 1,
        ctr = CASE WHEN impressions > 0
              THEN LEAST(round((clicks + 1)::numeric / impressions * 100, 2), 100)
              ELSE 0 END
    WHERE id = $1`, varID)
				if err != nil {
					return err
				}
				_, err = db.Exec(ctx, `UPDATE offers
    SET total_clicks = total_clicks + 1,
        ctr = CASE WHEN total_impressions > 0
              THEN LEAST(round((total_clicks + 1)::numeric / total_impressions * 100, 2), 100)
              ELSE 0 END
    WHERE id = $1`, offerID)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
