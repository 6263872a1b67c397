package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

// maxBody bounds every JSON request body.
const maxBody = 1 << 20

var errInvalidJSON = errors.New("invalid JSON")

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errInvalidJSON
	}
	return nil
}

// pathAddress parses the named chi URL parameter as an address.
func pathAddress(r *http.Request, name string) (domain.Address, error) {
	return domain.ParseAddress(chi.URLParam(r, name))
}

// amountField parses a human-readable token quantity from a request.
func amountField(s string) (domain.Amount, error) {
	if s == "" {
		return 0, domain.ErrInvalidAmount
	}
	return domain.ParseUnits(s)
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidPage, name)
	}
	return n, nil
}

type createCampaignRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	GoalAmount        string `json:"goal_amount"`
	DurationDays      int    `json:"duration_days"`
	Beneficiary       string `json:"beneficiary"`
	WithdrawAuthority string `json:"withdraw_authority,omitempty"`
}

// params converts the request. A malformed goal or beneficiary is left at
// its zero value, so Validate reports it in its usual order.
func (req createCampaignRequest) params() domain.CreateParams {
	p := domain.CreateParams{
		Title:        req.Title,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		Authority:    domain.WithdrawAuthority(req.WithdrawAuthority),
	}
	if goal, err := domain.ParseUnits(req.GoalAmount); err == nil {
		p.GoalAmount = goal
	}
	if addr, err := domain.ParseAddress(req.Beneficiary); err == nil {
		p.Beneficiary = addr
	}
	return p
}

type amountRequest struct {
	Amount string `json:"amount"`
}

type approveRequest struct {
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

type faucetRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type devTokenRequest struct {
	Address string `json:"address"`
}
