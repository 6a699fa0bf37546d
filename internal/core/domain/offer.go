package domain

import "time"

// OfferType classifies how the outbound link for an offer is built.
type OfferType string

const (
	OfferTypeAffiliate OfferType = "affiliate"
	OfferTypeDonation  OfferType = "donation"
	OfferTypeReview    OfferType = "review"
)

// OfferStatus is the lifecycle state of an offer. Only active offers are
// ever selectable.
type OfferStatus string

const (
	OfferStatusDraft  OfferStatus = "draft"
	OfferStatusActive OfferStatus = "active"
	OfferStatusPaused OfferStatus = "paused"
)

// Offer is a promotable item shown in the newsletter. Offers are created and
// edited by an external CRUD surface; this service reads them and maintains
// the denormalized counters.
type Offer struct {
	ID             int64
	Name           string
	Description    string
	OfferType      OfferType
	DestinationURL string
	Slug           string
	Status         OfferStatus
	StartDate      *time.Time // nil means no start constraint
	EndDate        *time.Time // nil means no end constraint
	Priority       int
	Weight         int

	TotalImpressions int64
	TotalClicks      int64
	CTR              float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveWeight is the value the weighted draw is proportional to. A
// priority of 0 still contributes weight×1, so priority biases an offer but
// never zeroes it out.
func (o Offer) EffectiveWeight() int64 {
	return int64(o.Weight) * int64(o.Priority+1)
}
