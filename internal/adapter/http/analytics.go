package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"promo-engine/internal/core/port"
)

// handleAnalytics returns per-offer performance rollups for the dashboard.
// It accepts an optional `days` query parameter (default 30) bounding the
// daily trend window. Unlike the open endpoints, failures here surface as
// clear errors because a human is waiting on the response.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(chi.URLParam(r, "offerID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid offer id")
		return
	}

	days := 30
	if s := r.URL.Query().Get("days"); s != "" {
		days, err = strconv.Atoi(s)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'days' parameter")
			return
		}
	}

	resp, err := h.svc.OfferAnalytics(r.Context(), offerID, days)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, port.ErrDaysOutOfRange):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrOfferNotFound):
		h.writeError(w, http.StatusNotFound, "offer not found")
	default:
		h.logger.Error("analytics error",
			slog.Int64("offer_id", offerID), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "failed to retrieve analytics")
	}
}
