package httpadapter

import "net/http"

// handleCampaignReport returns every campaign with its live state plus a
// summary. Campaigns that failed to load appear with an error message and
// are left out of the summary.
func (h *Handler) handleCampaignReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Reports.CampaignReport(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reportOf(rep))
}
