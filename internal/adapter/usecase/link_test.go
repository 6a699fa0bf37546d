package usecase

import (
	"testing"

	"promo-engine/internal/core/domain"
)

func TestBuildLink(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		offer       domain.Offer
		variationID int64
		want        string
	}{
		{
			name:        "review offer links to the article",
			offer:       domain.Offer{Slug: "foo", OfferType: domain.OfferTypeReview},
			variationID: 7,
			want:        "/review/foo?utm_source=newsletter&promo_var=7",
		},
		{
			name:        "affiliate offer links to the redirect slug",
			offer:       domain.Offer{Slug: "bar", OfferType: domain.OfferTypeAffiliate},
			variationID: 9,
			want:        "/bar?utm_source=newsletter&promo_var=9",
		},
		{
			name:        "donation offer links to the redirect slug",
			offer:       domain.Offer{Slug: "tip-jar", OfferType: domain.OfferTypeDonation},
			variationID: 3,
			want:        "/tip-jar?utm_source=newsletter&promo_var=3",
		},
		{
			name:        "base url is prepended verbatim",
			baseURL:     "https://news.example.com",
			offer:       domain.Offer{Slug: "foo", OfferType: domain.OfferTypeReview},
			variationID: 7,
			want:        "https://news.example.com/review/foo?utm_source=newsletter&promo_var=7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildLink(tt.baseURL, tt.offer, tt.variationID)
			if got != tt.want {
				t.Errorf("BuildLink() = %q, want %q", got, tt.want)
			}
		})
	}
}
