package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// impressionRequest is the body of POST /promo/track-impression. The raw
// ip_address never leaves this package unhashed: it is converted to a
// domain.SourceHash before the input reaches the usecase.
type impressionRequest struct {
	OfferID          int64  `json:"offer_id"`
	VariationID      int64  `json:"variation_id"`
	NewsletterSendID string `json:"newsletter_send_id"`
	SubscriberCount  int    `json:"subscriber_count"`
	IPAddress        string `json:"ip_address"`
}

// clickRequest is the body of POST /promo/track-click. offer_id is optional;
// the redirect handler only knows the promo_var it extracted from the URL.
type clickRequest struct {
	VariationID int64  `json:"variation_id"`
	OfferID     int64  `json:"offer_id"`
	UserAgent   string `json:"user_agent"`
	Referrer    string `json:"referrer"`
	UTMSource   string `json:"utm_source"`
	IPAddress   string `json:"ip_address"`
}

// handleTrackImpression records one impression. Bad references are rejected
// with 400 since this endpoint is called by unauthenticated automated
// systems; store failures return 500, which the newsletter pipeline is
// contractually allowed to ignore.
func (h *Handler) handleTrackImpression(w http.ResponseWriter, r *http.Request) {
	var req impressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	err := h.svc.TrackImpression(r.Context(), port.ImpressionInput{
		OfferID:          req.OfferID,
		VariationID:      req.VariationID,
		NewsletterSendID: req.NewsletterSendID,
		SubscriberCount:  req.SubscriberCount,
		SourceHash:       domain.HashSource(req.IPAddress),
	})
	switch {
	case err == nil:
		h.metrics.ImpressionsTracked.Inc()
		w.WriteHeader(http.StatusNoContent)
	case isValidationErr(err):
		h.metrics.TrackingRejected.WithLabelValues("impression").Inc()
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.metrics.TrackingErrors.WithLabelValues("impression").Inc()
		h.logger.Error("track impression error",
			slog.Int64("offer_id", req.OfferID),
			slog.Int64("variation_id", req.VariationID),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "failed to track impression")
	}
}

// handleTrackClick records one click, resolving the parent offer when the
// request carries no offer_id.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	err := h.svc.TrackClick(r.Context(), port.ClickInput{
		VariationID: req.VariationID,
		OfferID:     req.OfferID,
		UserAgent:   req.UserAgent,
		Referrer:    req.Referrer,
		UTMSource:   req.UTMSource,
		SourceHash:  domain.HashSource(req.IPAddress),
	})
	switch {
	case err == nil:
		h.metrics.ClicksTracked.Inc()
		w.WriteHeader(http.StatusNoContent)
	case isValidationErr(err):
		h.metrics.TrackingRejected.WithLabelValues("click").Inc()
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.metrics.TrackingErrors.WithLabelValues("click").Inc()
		h.logger.Error("track click error",
			slog.Int64("variation_id", req.VariationID),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "failed to track click")
	}
}

func isValidationErr(err error) bool {
	return errors.Is(err, port.ErrOfferNotFound) ||
		errors.Is(err, port.ErrVariationNotFound) ||
		errors.Is(err, port.ErrVariationMismatch)
}
