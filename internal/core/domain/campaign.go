package domain

import (
	"strings"
	"time"
)

// Status is the financial state of a campaign. Only Withdrawn is stored;
// the others are derived from the ledger and the clock by DeriveStatus.
type Status uint8

const (
	StatusActive Status = iota
	StatusCompleted
	StatusExpired
	StatusWithdrawn
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusExpired:
		return "expired"
	case StatusWithdrawn:
		return "withdrawn"
	default:
		return "unknown"
	}
}

// WithdrawAuthority decides who besides the beneficiary may trigger a
// withdrawal. It is fixed when the campaign is created.
type WithdrawAuthority string

const (
	WithdrawByBeneficiary          WithdrawAuthority = "beneficiary"
	WithdrawByBeneficiaryOrCreator WithdrawAuthority = "beneficiary_or_creator"
)

// ParseWithdrawAuthority accepts the two authority names, case-insensitively.
func ParseWithdrawAuthority(s string) (WithdrawAuthority, error) {
	switch WithdrawAuthority(strings.ToLower(strings.TrimSpace(s))) {
	case WithdrawByBeneficiary:
		return WithdrawByBeneficiary, nil
	case WithdrawByBeneficiaryOrCreator:
		return WithdrawByBeneficiaryOrCreator, nil
	default:
		return "", ErrInvalidWithdrawAuthority
	}
}

// Campaign is one fundraiser: its factory metadata, its ledger totals and
// the record of its terminal withdrawal. Per-donor amounts live in the
// repository and are reached through DonationOf/Donors.
type Campaign struct {
	ID          int64
	Address     Address // custody account and public reference
	Creator     Address
	Beneficiary Address
	Title       string
	Description string
	GoalAmount  Amount
	CreatedAt   time.Time
	Deadline    time.Time
	Authority   WithdrawAuthority
	FeeBps      int64
	IsActive    bool

	TotalRaised Amount
	DonorCount  int64

	WithdrawnAt *time.Time
	FeeAmount   Amount
	NetAmount   Amount
}

// Status derives the financial state at now. A reached goal wins over a
// passed deadline.
func (c *Campaign) Status(now time.Time) Status {
	return DeriveStatus(c.TotalRaised, c.GoalAmount, c.Deadline, c.WithdrawnAt != nil, now)
}

// DeriveStatus is the single place where goal and deadline are compared.
func DeriveStatus(raised, goal Amount, deadline time.Time, withdrawn bool, now time.Time) Status {
	switch {
	case withdrawn:
		return StatusWithdrawn
	case raised >= goal:
		return StatusCompleted
	case !now.Before(deadline):
		return StatusExpired
	default:
		return StatusActive
	}
}

// ProgressBps is totalRaised*10000/goal, rounded down. It exceeds 10000
// once the goal is overshot.
func (c *Campaign) ProgressBps() int64 {
	return ProgressBps(c.TotalRaised, c.GoalAmount)
}

// ProgressBps is raised*10000/goal, or 0 for a non-positive goal.
func ProgressBps(raised, goal Amount) int64 {
	if goal <= 0 {
		return 0
	}
	return mulDiv(int64(raised), BasisPoints, int64(goal))
}

// RemainingTime is max(0, deadline-now).
func (c *Campaign) RemainingTime(now time.Time) time.Duration {
	if d := c.Deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// CheckDonation validates a donation of amount at now. The deadline is
// checked against the clock before the derived status, so a campaign that
// has not been read since its deadline still refuses donations.
func (c *Campaign) CheckDonation(amount Amount, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !now.Before(c.Deadline) {
		return ErrDeadlinePassed
	}
	if c.Status(now) != StatusActive {
		return ErrCampaignNotActive
	}
	return nil
}

// ApplyDonation adds amount to the ledger totals. firstFromDonor is true
// when the donor had no entry before this donation.
func (c *Campaign) ApplyDonation(amount Amount, firstFromDonor bool) {
	c.TotalRaised += amount
	if firstFromDonor {
		c.DonorCount++
	}
}

// CanWithdraw reports whether the campaign has reached a withdrawable state.
func (c *Campaign) CanWithdraw(now time.Time) bool {
	s := c.Status(now)
	return s == StatusCompleted || s == StatusExpired
}

// MayWithdraw reports whether caller is allowed to trigger the withdrawal.
func (c *Campaign) MayWithdraw(caller Address) bool {
	if caller.IsZero() {
		return false
	}
	if caller == c.Beneficiary {
		return true
	}
	return c.Authority == WithdrawByBeneficiaryOrCreator && caller == c.Creator
}

// CheckWithdraw validates a withdrawal by caller at now.
func (c *Campaign) CheckWithdraw(caller Address, now time.Time) error {
	if !c.MayWithdraw(caller) {
		return ErrNotWithdrawer
	}
	switch c.Status(now) {
	case StatusWithdrawn:
		return ErrAlreadyWithdrawn
	case StatusActive:
		return ErrStillActive
	}
	if c.TotalRaised <= 0 {
		return ErrNothingToWithdraw
	}
	return nil
}

// Payout splits the raised total into the platform fee and the
// beneficiary's net amount.
func (c *Campaign) Payout() (net, fee Amount) {
	fee = MulDivBps(c.TotalRaised, c.FeeBps)
	return c.TotalRaised - fee, fee
}

// MarkWithdrawn records the terminal transition. TotalRaised is kept as
// the historical record.
func (c *Campaign) MarkWithdrawn(net, fee Amount, at time.Time) {
	c.NetAmount = net
	c.FeeAmount = fee
	c.WithdrawnAt = &at
}

// Info is the factory-held metadata tuple: cheap to read, never touches
// the donation ledger.
type Info struct {
	Address    Address
	Title      string
	Creator    Address
	GoalAmount Amount
	Deadline   time.Time
	CreatedAt  time.Time
	IsActive   bool
}

// Details is the live view of a campaign's ledger and state.
type Details struct {
	Address     Address
	Title       string
	Description string
	GoalAmount  Amount
	TotalRaised Amount
	Deadline    time.Time
	Beneficiary Address
	Status      Status
	DonorCount  int64
}

// InfoOf projects the factory metadata.
func (c *Campaign) InfoOf() Info {
	return Info{
		Address:    c.Address,
		Title:      c.Title,
		Creator:    c.Creator,
		GoalAmount: c.GoalAmount,
		Deadline:   c.Deadline,
		CreatedAt:  c.CreatedAt,
		IsActive:   c.IsActive,
	}
}

// DetailsAt projects the live state at now.
func (c *Campaign) DetailsAt(now time.Time) Details {
	return Details{
		Address:     c.Address,
		Title:       c.Title,
		Description: c.Description,
		GoalAmount:  c.GoalAmount,
		TotalRaised: c.TotalRaised,
		Deadline:    c.Deadline,
		Beneficiary: c.Beneficiary,
		Status:      c.Status(now),
		DonorCount:  c.DonorCount,
	}
}

// DonorTotal is one entry of a campaign's donation ledger.
type DonorTotal struct {
	Donor  Address
	Amount Amount
}

// MaxPageLimit bounds every donor listing.
const MaxPageLimit = 100

// Page is an offset cursor over an insertion-ordered listing.
type Page struct {
	Offset int
	Limit  int
}

// Normalize applies the default and maximum limit.
func (p Page) Normalize() (Page, error) {
	if p.Offset < 0 || p.Limit < 0 {
		return p, ErrInvalidPage
	}
	if p.Limit == 0 || p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p, nil
}
