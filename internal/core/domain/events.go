package domain

import "time"

// Event types published after a mutation commits.
const (
	EventCampaignCreated     = "campaign.created"
	EventCampaignDeactivated = "campaign.deactivated"
	EventDonationMade        = "campaign.donation_made"
	EventWithdrawal          = "campaign.withdrawal"
)

// Event is implemented by every ledger event. Campaign returns the
// reference used as partition key.
type Event interface {
	Type() string
	Campaign() Address
}

type CampaignCreated struct {
	CampaignAddr Address   `json:"campaign"`
	Creator      Address   `json:"creator"`
	Title        string    `json:"title"`
	GoalAmount   Amount    `json:"goal_amount"`
	Deadline     time.Time `json:"deadline"`
}

func (CampaignCreated) Type() string        { return EventCampaignCreated }
func (e CampaignCreated) Campaign() Address { return e.CampaignAddr }

type CampaignDeactivated struct {
	CampaignAddr Address   `json:"campaign"`
	At           time.Time `json:"timestamp"`
}

func (CampaignDeactivated) Type() string        { return EventCampaignDeactivated }
func (e CampaignDeactivated) Campaign() Address { return e.CampaignAddr }

type DonationMade struct {
	CampaignAddr Address   `json:"campaign"`
	Donor        Address   `json:"donor"`
	Amount       Amount    `json:"amount"`
	DonorTotal   Amount    `json:"donor_total"`
	NewTotal     Amount    `json:"new_total"`
	At           time.Time `json:"timestamp"`
}

func (DonationMade) Type() string        { return EventDonationMade }
func (e DonationMade) Campaign() Address { return e.CampaignAddr }

type Withdrawal struct {
	CampaignAddr Address   `json:"campaign"`
	Beneficiary  Address   `json:"beneficiary"`
	TotalRaised  Amount    `json:"total_raised"`
	NetAmount    Amount    `json:"net_amount"`
	FeeAmount    Amount    `json:"fee_amount"`
	At           time.Time `json:"timestamp"`
}

func (Withdrawal) Type() string        { return EventWithdrawal }
func (e Withdrawal) Campaign() Address { return e.CampaignAddr }
