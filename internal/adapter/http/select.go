package httpadapter

import (
	"log/slog"
	"net/http"
	"time"
)

// handleSelectRandom answers the newsletter generator with a weighted-random
// promo selection. The caller applies its own short timeout and sends the
// newsletter with or without a promo, so every failure path here degrades to
// an explicit 503 rather than surfacing an error. "No eligible offers" is a
// normal condition and is not logged as an error.
func (h *Handler) handleSelectRandom(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.SelectPromo(r.Context(), time.Now().UTC())
	if err != nil {
		h.logger.Error("promo selection error", slog.Any("error", err))
		h.writeError(w, http.StatusServiceUnavailable, "selection failed")
		return
	}
	if resp == nil {
		h.metrics.SelectionsUnavailable.Inc()
		h.writeError(w, http.StatusServiceUnavailable, "no active offers available")
		return
	}
	h.metrics.SelectionsServed.Inc()
	h.writeJSON(w, http.StatusOK, resp)
}
