package domain

import (
	"strings"
	"time"
)

const (
	MinDurationDays = 1
	MaxDurationDays = 365

	// MaxFeeBps caps the platform fee at 10%.
	MaxFeeBps = 1_000
)

// CreateParams is the input of CampaignFactory.CreateCampaign.
type CreateParams struct {
	Title        string
	Description  string
	GoalAmount   Amount
	DurationDays int
	Beneficiary  Address
	// Authority is optional; the factory default applies when empty.
	Authority WithdrawAuthority
}

// Validate checks the parameters in a fixed order and returns the first
// violation.
func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}
	if p.GoalAmount <= 0 {
		return ErrInvalidGoal
	}
	if p.DurationDays < MinDurationDays || p.DurationDays > MaxDurationDays {
		return ErrInvalidDuration
	}
	if p.Beneficiary.IsZero() {
		return ErrInvalidBeneficiary
	}
	if p.Authority != "" {
		if _, err := ParseWithdrawAuthority(string(p.Authority)); err != nil {
			return err
		}
	}
	return nil
}

// Deadline returns createdAt plus the campaign duration.
func (p CreateParams) Deadline(createdAt time.Time) time.Time {
	return createdAt.Add(time.Duration(p.DurationDays) * 24 * time.Hour)
}

// FactorySettings are fixed when the factory is constructed.
type FactorySettings struct {
	Token            Address
	FeeBps           int64
	FeeRecipient     Address
	DefaultAuthority WithdrawAuthority
}

// Validate rejects settings the factory must never run with.
func (s FactorySettings) Validate() error {
	if s.Token.IsZero() {
		return ErrInvalidTokenAddress
	}
	if s.FeeBps < 0 || s.FeeBps > MaxFeeBps {
		return ErrFeeTooHigh
	}
	if s.FeeRecipient.IsZero() {
		return ErrInvalidFeeRecipient
	}
	if _, err := ParseWithdrawAuthority(string(s.DefaultAuthority)); err != nil {
		return err
	}
	return nil
}
