package httpadapter

import (
	"log/slog"
	"net/http"
	"time"
)

// handleHealth reports service and store health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.started).Round(time.Second).String()
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unreachable",
			"uptime":   uptime,
		})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "connected",
		"uptime":   uptime,
	})
}
