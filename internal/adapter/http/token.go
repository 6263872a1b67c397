package httpadapter

import (
	"net/http"
	"time"

	"crowdfund/internal/core/domain"
)

// devTokenTTL is the lifetime of tokens from the dev issuer.
const devTokenTTL = 24 * time.Hour

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	meta := h.svc.Token.Metadata()
	supply, err := h.svc.Token.TotalSupply(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		Address:     h.svc.Factory.GetUSDCToken(),
		Name:        meta.Name,
		Symbol:      meta.Symbol,
		Decimals:    meta.Decimals,
		Owner:       meta.Owner,
		TotalSupply: amountOf(supply),
	})
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	addr, err := pathAddress(r, "addr")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bal, err := h.svc.Token.BalanceOf(r.Context(), addr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Address: addr, Balance: amountOf(bal)})
}

func (h *Handler) handleAllowance(w http.ResponseWriter, r *http.Request) {
	owner, err := pathAddress(r, "owner")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	spender, err := pathAddress(r, "spender")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	allowance, err := h.svc.Token.Allowance(r.Context(), owner, spender)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"owner": owner, "spender": spender, "allowance": amountOf(allowance)})
}

// handleApprove sets the caller's allowance for spender, typically a
// campaign address ahead of a donation.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	spender, err := domain.ParseAddress(req.Spender)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := domain.ParseUnits(req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Token.Approve(r.Context(), callerFrom(r.Context()), spender, amount); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleFaucet(w http.ResponseWriter, r *http.Request) {
	var req faucetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	to, err := domain.ParseAddress(req.To)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := amountField(req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Token.Faucet(r.Context(), to, amount); err != nil {
		h.writeError(w, r, err)
		return
	}
	bal, err := h.svc.Token.BalanceOf(r.Context(), to)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Address: to, Balance: amountOf(bal)})
}

func (h *Handler) handleFaucetCooldown(w http.ResponseWriter, r *http.Request) {
	addr, err := pathAddress(r, "addr")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.svc.Token.FaucetCooldown(r.Context(), addr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"cooldown_seconds": int64(d / time.Second)})
}

// handleDevToken issues a bearer token for any address. It is mounted
// only with WithDevRoutes.
func (h *Handler) handleDevToken(w http.ResponseWriter, r *http.Request) {
	var req devTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	addr, err := domain.ParseAddress(req.Address)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	token, err := h.auth.Issue(addr, devTokenTTL)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
