package httpadapter

import (
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Amounts are rendered twice: in base units for machines and with six
// decimals for people.
type amountJSON struct {
	Units   int64  `json:"units"`
	Display string `json:"display"`
}

func amountOf(a domain.Amount) amountJSON {
	return amountJSON{Units: int64(a), Display: domain.FormatUnits(a)}
}

type infoResponse struct {
	Address    domain.Address `json:"address"`
	Title      string         `json:"title"`
	Creator    domain.Address `json:"creator"`
	GoalAmount amountJSON     `json:"goal_amount"`
	Deadline   time.Time      `json:"deadline"`
	CreatedAt  time.Time      `json:"created_at"`
	IsActive   bool           `json:"is_active"`
}

func infoOf(i domain.Info) infoResponse {
	return infoResponse{
		Address:    i.Address,
		Title:      i.Title,
		Creator:    i.Creator,
		GoalAmount: amountOf(i.GoalAmount),
		Deadline:   i.Deadline,
		CreatedAt:  i.CreatedAt,
		IsActive:   i.IsActive,
	}
}

type detailsResponse struct {
	Address     domain.Address `json:"address"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	GoalAmount  amountJSON     `json:"goal_amount"`
	TotalRaised amountJSON     `json:"total_raised"`
	Deadline    time.Time      `json:"deadline"`
	Beneficiary domain.Address `json:"beneficiary"`
	Status      string         `json:"status"`
	DonorCount  int64          `json:"donor_count"`
}

func detailsOf(d domain.Details) detailsResponse {
	return detailsResponse{
		Address:     d.Address,
		Title:       d.Title,
		Description: d.Description,
		GoalAmount:  amountOf(d.GoalAmount),
		TotalRaised: amountOf(d.TotalRaised),
		Deadline:    d.Deadline,
		Beneficiary: d.Beneficiary,
		Status:      d.Status.String(),
		DonorCount:  d.DonorCount,
	}
}

type createdResponse struct {
	ID          int64          `json:"id"`
	Address     domain.Address `json:"address"`
	Creator     domain.Address `json:"creator"`
	Beneficiary domain.Address `json:"beneficiary"`
	GoalAmount  amountJSON     `json:"goal_amount"`
	Deadline    time.Time      `json:"deadline"`
	Authority   string         `json:"withdraw_authority"`
	FeeBps      int64          `json:"fee_bps"`
}

type donorResponse struct {
	Donor  domain.Address `json:"donor"`
	Amount amountJSON     `json:"amount"`
}

func donorsOf(ds []domain.DonorTotal) []donorResponse {
	out := make([]donorResponse, len(ds))
	for i, d := range ds {
		out[i] = donorResponse{Donor: d.Donor, Amount: amountOf(d.Amount)}
	}
	return out
}

type donationResponse struct {
	Campaign    domain.Address `json:"campaign"`
	Donor       domain.Address `json:"donor"`
	Amount      amountJSON     `json:"amount"`
	DonorTotal  amountJSON     `json:"donor_total"`
	TotalRaised amountJSON     `json:"total_raised"`
	Status      string         `json:"status"`
}

func donationOf(r port.DonationReceipt) donationResponse {
	return donationResponse{
		Campaign:    r.Campaign,
		Donor:       r.Donor,
		Amount:      amountOf(r.Amount),
		DonorTotal:  amountOf(r.DonorTotal),
		TotalRaised: amountOf(r.TotalRaised),
		Status:      r.Status.String(),
	}
}

type withdrawalResponse struct {
	Campaign     domain.Address `json:"campaign"`
	Beneficiary  domain.Address `json:"beneficiary"`
	FeeRecipient domain.Address `json:"fee_recipient"`
	TotalRaised  amountJSON     `json:"total_raised"`
	NetAmount    amountJSON     `json:"net_amount"`
	FeeAmount    amountJSON     `json:"fee_amount"`
	WithdrawnAt  time.Time      `json:"withdrawn_at"`
}

func withdrawalOf(r port.WithdrawalReceipt) withdrawalResponse {
	return withdrawalResponse{
		Campaign:     r.Campaign,
		Beneficiary:  r.Beneficiary,
		FeeRecipient: r.FeeRecipient,
		TotalRaised:  amountOf(r.TotalRaised),
		NetAmount:    amountOf(r.NetAmount),
		FeeAmount:    amountOf(r.FeeAmount),
		WithdrawnAt:  r.WithdrawnAt,
	}
}

type reportRowResponse struct {
	Address          domain.Address   `json:"address"`
	Info             *infoResponse    `json:"info,omitempty"`
	Details          *detailsResponse `json:"details,omitempty"`
	ProgressBps      int64            `json:"progress_bps"`
	RemainingSeconds int64            `json:"remaining_seconds"`
	TopDonors        []donorResponse  `json:"top_donors"`
	MoreDonors       int64            `json:"more_donors"`
	Error            string           `json:"error,omitempty"`
}

type reportSummaryResponse struct {
	TotalCampaigns     int64      `json:"total_campaigns"`
	ActiveCampaigns    int        `json:"active_campaigns"`
	InactiveCampaigns  int        `json:"inactive_campaigns"`
	CompletedCampaigns int        `json:"completed_campaigns"`
	TotalGoal          amountJSON `json:"total_goal"`
	TotalRaised        amountJSON `json:"total_raised"`
	TotalDonors        int64      `json:"total_donors"`
	OverallProgressBps int64      `json:"overall_progress_bps"`
	FailedRows         int        `json:"failed_rows"`
	Capped             bool       `json:"capped,omitempty"`
}

type reportResponse struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Summary     reportSummaryResponse `json:"summary"`
	Campaigns   []reportRowResponse   `json:"campaigns"`
}

// reportOf hides row errors behind their message; the use case has
// already logged them.
func reportOf(rep *port.CampaignReport) reportResponse {
	s := rep.Summary
	out := reportResponse{
		GeneratedAt: rep.GeneratedAt,
		Summary: reportSummaryResponse{
			TotalCampaigns:     s.TotalCampaigns,
			ActiveCampaigns:    s.ActiveCampaigns,
			InactiveCampaigns:  s.InactiveCampaigns,
			CompletedCampaigns: s.CompletedCampaigns,
			TotalGoal:          amountOf(s.TotalGoal),
			TotalRaised:        amountOf(s.TotalRaised),
			TotalDonors:        s.TotalDonors,
			OverallProgressBps: s.OverallProgressBps,
			FailedRows:         s.FailedRows,
			Capped:             s.Capped,
		},
		Campaigns: make([]reportRowResponse, len(rep.Rows)),
	}
	for i, row := range rep.Rows {
		r := reportRowResponse{Address: row.Address, TopDonors: []donorResponse{}}
		if row.Err != nil {
			r.Error = row.Err.Error()
			out.Campaigns[i] = r
			continue
		}
		info, details := infoOf(row.Info), detailsOf(row.Details)
		r.Info, r.Details = &info, &details
		r.ProgressBps = row.ProgressBps
		r.RemainingSeconds = int64(row.Remaining / time.Second)
		r.TopDonors = donorsOf(row.TopDonors)
		r.MoreDonors = row.MoreDonors
		out.Campaigns[i] = r
	}
	return out
}

type tokenResponse struct {
	Address     domain.Address `json:"address"`
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	Decimals    uint8          `json:"decimals"`
	Owner       domain.Address `json:"owner"`
	TotalSupply amountJSON     `json:"total_supply"`
}

type balanceResponse struct {
	Address domain.Address `json:"address"`
	Balance amountJSON     `json:"balance"`
}
