package usecase

import (
	"fmt"

	"promo-engine/internal/core/domain"
)

const utmSource = "newsletter"

// BuildLink formats the outbound tracking link for an offer and the chosen
// variation. Review offers link to the internal review article; affiliate
// and donation offers link to the cloaked redirect slug. The promo_var
// parameter carries the variation id so the redirect handler can report the
// click back. Pure and deterministic.
func BuildLink(baseURL string, offer domain.Offer, variationID int64) string {
	path := "/" + offer.Slug
	if offer.OfferType == domain.OfferTypeReview {
		path = "/review/" + offer.Slug
	}
	return fmt.Sprintf("%s%s?utm_source=%s&promo_var=%d", baseURL, path, utmSource, variationID)
}
