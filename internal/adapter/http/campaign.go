package httpadapter

import (
	"net/http"
	"time"

	"crowdfund/internal/core/domain"
)

// handleListCampaigns returns campaign addresses in creation order. The
// filter query parameter selects all (default) or active campaigns;
// creator narrows the list to one creator.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q    = r.URL.Query()
		refs []domain.Address
		err  error
	)
	switch {
	case q.Get("creator") != "":
		creator, perr := domain.ParseAddress(q.Get("creator"))
		if perr != nil {
			h.writeError(w, r, perr)
			return
		}
		refs, err = h.svc.Factory.GetCampaignsByCreator(r.Context(), creator)
	case q.Get("filter") == "active":
		refs, err = h.svc.Factory.GetActiveCampaigns(r.Context())
	case q.Get("filter") == "" || q.Get("filter") == "all":
		refs, err = h.svc.Factory.GetAllCampaigns(r.Context())
	default:
		writeErrorMessage(w, http.StatusBadRequest, "filter must be all or active")
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	total, err := h.svc.Factory.TotalCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": refs, "total": total})
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Factory.CreateCampaign(r.Context(), callerFrom(r.Context()), req.params())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{
		ID:          c.ID,
		Address:     c.Address,
		Creator:     c.Creator,
		Beneficiary: c.Beneficiary,
		GoalAmount:  amountOf(c.GoalAmount),
		Deadline:    c.Deadline,
		Authority:   string(c.Authority),
		FeeBps:      c.FeeBps,
	})
}

func (h *Handler) handleCampaignDetails(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.svc.Factory.GetCampaignDetails(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detailsOf(d))
}

func (h *Handler) handleCampaignInfo(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	info, err := h.svc.Factory.GetCampaignInfo(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, infoOf(info))
}

// handleIsValidCampaign answers false, not 404, for unknown and malformed
// references.
func (h *Handler) handleIsValidCampaign(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]bool{"valid": false})
		return
	}
	ok, err := h.svc.Factory.IsValidCampaign(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": ok})
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bps, err := h.svc.Campaigns.GetProgressPercentage(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"progress_bps": bps, "progress_percent": bps / 100})
}

func (h *Handler) handleRemainingTime(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.svc.Campaigns.GetRemainingTime(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"remaining_seconds": int64(d / time.Second)})
}

func (h *Handler) handleCanWithdraw(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok, err := h.svc.Campaigns.CanWithdraw(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"can_withdraw": ok})
}

// handleDonors lists donors in first-donation order, paginated by offset
// and limit (at most domain.MaxPageLimit).
func (h *Handler) handleDonors(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var page domain.Page
	if page.Offset, err = queryInt(r, "offset"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if page.Limit, err = queryInt(r, "limit"); err != nil {
		h.writeError(w, r, err)
		return
	}
	donors, err := h.svc.Campaigns.GetDonors(r.Context(), ref, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"donors": donorsOf(donors), "offset": page.Offset})
}

func (h *Handler) handleDonationAmount(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	donor, err := pathAddress(r, "donor")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := h.svc.Campaigns.GetDonationAmount(r.Context(), ref, donor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, donorResponse{Donor: donor, Amount: amountOf(amount)})
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Factory.DeactivateCampaign(r.Context(), callerFrom(r.Context()), ref); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDonate pulls the donation from the caller's approved balance. The
// caller must have approved the campaign address for at least amount.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req amountRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := amountField(req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	receipt, err := h.svc.Campaigns.Donate(r.Context(), callerFrom(r.Context()), ref, amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, donationOf(receipt))
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	ref, err := pathAddress(r, "ref")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	receipt, err := h.svc.Campaigns.Withdraw(r.Context(), callerFrom(r.Context()), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, withdrawalOf(receipt))
}
