package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleCampaignFeed streams a campaign's events over a websocket.
func (h *Handler) handleCampaignFeed(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok, err := h.svc.Factory.IsValidCampaign(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !ok {
		writeErrorMessage(w, http.StatusNotFound, "campaign not found")
		return
	}
	if err = h.ws.ServeWS(w, r, ref); err != nil {
		// The upgrader has already replied to the client.
		h.logger.Warn("websocket upgrade", slog.String("campaign", ref.String()), slog.Any("error", err))
	}
}
