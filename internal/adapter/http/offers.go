package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"promo-engine/internal/core/domain"
)

// offerResponse is the dashboard view of an offer. Offers are created and
// edited elsewhere; this service only exposes them read-only together with
// their denormalized counters.
type offerResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	OfferType        string  `json:"offer_type"`
	DestinationURL   string  `json:"destination_url"`
	Slug             string  `json:"slug"`
	Status           string  `json:"status"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	Priority         int     `json:"priority"`
	Weight           int     `json:"weight"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	CTR              float64 `json:"ctr"`
}

type variationResponse struct {
	ID             int64   `json:"id"`
	OfferID        int64   `json:"offer_id"`
	TextContent    string  `json:"text_content"`
	CTAText        string  `json:"cta_text"`
	Tone           string  `json:"tone"`
	LengthCategory string  `json:"length_category"`
	Approved       bool    `json:"approved"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	CTR            float64 `json:"ctr"`
}

func toOfferResponse(o domain.Offer) offerResponse {
	fmtDate := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	}
	return offerResponse{
		ID:               o.ID,
		Name:             o.Name,
		Description:      o.Description,
		OfferType:        string(o.OfferType),
		DestinationURL:   o.DestinationURL,
		Slug:             o.Slug,
		Status:           string(o.Status),
		StartDate:        fmtDate(o.StartDate),
		EndDate:          fmtDate(o.EndDate),
		Priority:         o.Priority,
		Weight:           o.Weight,
		TotalImpressions: o.TotalImpressions,
		TotalClicks:      o.TotalClicks,
		CTR:              o.CTR,
	}
}

func toVariationResponse(v domain.Variation) variationResponse {
	return variationResponse{
		ID:             v.ID,
		OfferID:        v.OfferID,
		TextContent:    v.TextContent,
		CTAText:        v.CTAText,
		Tone:           v.Tone,
		LengthCategory: v.LengthCategory,
		Approved:       v.Approved,
		Impressions:    v.Impressions,
		Clicks:         v.Clicks,
		CTR:            v.CTR,
	}
}

func (h *Handler) handleListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.svc.ListOffers(r.Context())
	if err != nil {
		h.logger.Error("list offers error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "failed to list offers")
		return
	}
	resp := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, toOfferResponse(o))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "offerID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid offer id")
		return
	}
	offer, err := h.svc.GetOffer(r.Context(), id)
	if err != nil {
		h.logger.Error("get offer error", slog.Int64("offer_id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "failed to get offer")
		return
	}
	if offer == nil {
		h.writeError(w, http.StatusNotFound, "offer not found")
		return
	}
	h.writeJSON(w, http.StatusOK, toOfferResponse(*offer))
}

func (h *Handler) handleListVariations(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "offerID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid offer id")
		return
	}
	variations, err := h.svc.ListVariations(r.Context(), id)
	if err != nil {
		h.logger.Error("list variations error", slog.Int64("offer_id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "failed to list variations")
		return
	}
	resp := make([]variationResponse, 0, len(variations))
	for _, v := range variations {
		resp = append(resp, toVariationResponse(v))
	}
	h.writeJSON(w, http.StatusOK, resp)
}
