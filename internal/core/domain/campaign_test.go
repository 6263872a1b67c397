package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0       = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline = t0.Add(72 * time.Hour)
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		raised    Amount
		withdrawn bool
		now       time.Time
		want      Status
	}{
		{"fresh", 0, false, t0, StatusActive},
		{"partially funded", 500, false, t0, StatusActive},
		{"goal reached", 1000, false, t0, StatusCompleted},
		{"goal overshot", 1500, false, t0, StatusCompleted},
		{"deadline exact", 500, false, deadline, StatusExpired},
		{"after deadline", 0, false, deadline.Add(time.Hour), StatusExpired},
		{"goal beats deadline", 1000, false, deadline.Add(time.Hour), StatusCompleted},
		{"withdrawn beats all", 1000, true, t0, StatusWithdrawn},
		{"withdrawn after expiry", 200, true, deadline.Add(time.Hour), StatusWithdrawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.raised, 1000, deadline, tt.withdrawn, tt.now))
		})
	}
}

func newCampaign() Campaign {
	return Campaign{
		Address:     MustParseAddress("0x00000000000000000000000000000000000000aa"),
		Creator:     MustParseAddress("0x00000000000000000000000000000000000000c1"),
		Beneficiary: MustParseAddress("0x00000000000000000000000000000000000000b1"),
		GoalAmount:  1000,
		CreatedAt:   t0,
		Deadline:    deadline,
		Authority:   WithdrawByBeneficiary,
		FeeBps:      250,
		IsActive:    true,
	}
}

func TestCheckDonationOrder(t *testing.T) {
	c := newCampaign()
	require.NoError(t, c.CheckDonation(1, t0))

	// Amount is checked before the deadline.
	assert.ErrorIs(t, c.CheckDonation(0, deadline), ErrInvalidAmount)
	assert.ErrorIs(t, c.CheckDonation(1, deadline), ErrDeadlinePassed)

	c.TotalRaised = 1000
	assert.ErrorIs(t, c.CheckDonation(1, t0), ErrCampaignNotActive)
}

func TestApplyDonation(t *testing.T) {
	c := newCampaign()
	c.ApplyDonation(100, true)
	c.ApplyDonation(50, false)
	assert.Equal(t, Amount(150), c.TotalRaised)
	assert.Equal(t, int64(1), c.DonorCount)
}

func TestCheckWithdraw(t *testing.T) {
	after := deadline.Add(time.Second)

	c := newCampaign()
	assert.ErrorIs(t, c.CheckWithdraw(c.Creator, after), ErrNotWithdrawer)
	assert.ErrorIs(t, c.CheckWithdraw(ZeroAddress, after), ErrNotWithdrawer)
	assert.ErrorIs(t, c.CheckWithdraw(c.Beneficiary, t0), ErrStillActive)
	assert.ErrorIs(t, c.CheckWithdraw(c.Beneficiary, after), ErrNothingToWithdraw)

	c.TotalRaised = 10
	require.NoError(t, c.CheckWithdraw(c.Beneficiary, after))

	c.Authority = WithdrawByBeneficiaryOrCreator
	require.NoError(t, c.CheckWithdraw(c.Creator, after))

	c.MarkWithdrawn(10, 0, after)
	assert.ErrorIs(t, c.CheckWithdraw(c.Beneficiary, after), ErrAlreadyWithdrawn)
	assert.False(t, c.CanWithdraw(after))
}

func TestPayout(t *testing.T) {
	tests := []struct {
		raised   Amount
		bps      int64
		net, fee Amount
	}{
		{1_000_000_000, 250, 975_000_000, 25_000_000},
		{400_000_000, 250, 390_000_000, 10_000_000},
		{39, 250, 39, 0},
		{1_000_000, 0, 1_000_000, 0},
		{1_000_000, MaxFeeBps, 900_000, 100_000},
	}
	for _, tt := range tests {
		c := newCampaign()
		c.TotalRaised, c.FeeBps = tt.raised, tt.bps
		net, fee := c.Payout()
		assert.Equal(t, tt.net, net)
		assert.Equal(t, tt.fee, fee)
		assert.Equal(t, tt.raised, net+fee)
	}
}

func TestProgressAndRemaining(t *testing.T) {
	c := newCampaign()
	c.TotalRaised = 333
	assert.Equal(t, int64(3330), c.ProgressBps())
	c.TotalRaised = 2500
	assert.Equal(t, int64(25_000), c.ProgressBps())
	assert.Zero(t, ProgressBps(10, 0))

	assert.Equal(t, 72*time.Hour, c.RemainingTime(t0))
	assert.Zero(t, c.RemainingTime(deadline))
	assert.Zero(t, c.RemainingTime(deadline.Add(time.Hour)))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "active", StatusActive.String())
	assert.Equal(t, "withdrawn", StatusWithdrawn.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestPageNormalize(t *testing.T) {
	p, err := Page{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, MaxPageLimit, p.Limit)

	p, err = Page{Offset: 3, Limit: 500}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, Page{Offset: 3, Limit: MaxPageLimit}, p)

	_, err = Page{Limit: -1}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestParseWithdrawAuthority(t *testing.T) {
	a, err := ParseWithdrawAuthority(" Beneficiary_Or_Creator ")
	require.NoError(t, err)
	assert.Equal(t, WithdrawByBeneficiaryOrCreator, a)

	_, err = ParseWithdrawAuthority("creator")
	assert.ErrorIs(t, err, ErrInvalidWithdrawAuthority)
}
