package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/core/domain"
)

var (
	tokenAddr    = domain.MustParseAddress("0x1c7d4b196cb0c7b01d743fbc6116a902379c7238")
	owner        = domain.MustParseAddress("0x00000000000000000000000000000000000000f0")
	feeRecipient = domain.MustParseAddress("0x00000000000000000000000000000000000000fe")
	creator      = domain.MustParseAddress("0x00000000000000000000000000000000000000c1")
	creator2     = domain.MustParseAddress("0x00000000000000000000000000000000000000c2")
	beneficiary  = domain.MustParseAddress("0x00000000000000000000000000000000000000b1")
	donor1       = domain.MustParseAddress("0x00000000000000000000000000000000000000d1")
	donor2       = domain.MustParseAddress("0x00000000000000000000000000000000000000d2")
	stranger     = domain.MustParseAddress("0x00000000000000000000000000000000000000ee")
)

// fakeClock is a settable clock shared by all use cases of a fixture.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	clock     *fakeClock
	token     *memory.Token
	store     *memory.Store
	factory   *FactoryUseCase
	campaigns *CampaignUseCase
	reports   *ReportUseCase
}

func newFixture(t *testing.T, feeBps int64) *fixture {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	token := memory.NewToken(tokenAddr, owner)
	store := memory.NewStore(token)
	settings := domain.FactorySettings{
		Token:            tokenAddr,
		FeeBps:           feeBps,
		FeeRecipient:     feeRecipient,
		DefaultAuthority: domain.WithdrawByBeneficiary,
	}
	factory, err := NewFactoryUseCase(store, settings, WithClock(clock.Now))
	require.NoError(t, err)
	campaigns, err := NewCampaignUseCase(store, feeRecipient, WithClock(clock.Now))
	require.NoError(t, err)
	return &fixture{
		clock:     clock,
		token:     token,
		store:     store,
		factory:   factory,
		campaigns: campaigns,
		reports:   NewReportUseCase(factory, campaigns, WithClock(clock.Now)),
	}
}

func usdc(s string) domain.Amount { return domain.MustParseUnits(s) }

func defaultParams() domain.CreateParams {
	return domain.CreateParams{
		Title:        "Clean water",
		Description:  "Wells for the village",
		GoalAmount:   usdc("1000"),
		DurationDays: 30,
		Beneficiary:  beneficiary,
	}
}

func (f *fixture) create(t *testing.T, caller domain.Address, params domain.CreateParams) domain.Address {
	t.Helper()
	c, err := f.factory.CreateCampaign(context.Background(), caller, params)
	require.NoError(t, err)
	return c.Address
}

// fund gives donor tokens and approves the campaign to pull them.
func (f *fixture) fund(t *testing.T, donor, campaign domain.Address, amount domain.Amount) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.token.Faucet(ctx, donor, amount))
	require.NoError(t, f.token.Approve(ctx, donor, campaign, amount))
}

// assertLedger checks totalRaised == sum(donations) and donorCount == |donors|.
func (f *fixture) assertLedger(t *testing.T, ref domain.Address) {
	t.Helper()
	ctx := context.Background()
	c, err := f.store.Get(ctx, ref)
	require.NoError(t, err)
	donors, err := f.campaigns.GetDonors(ctx, ref, domain.Page{})
	require.NoError(t, err)
	var sum domain.Amount
	seen := map[domain.Address]bool{}
	for _, d := range donors {
		require.False(t, seen[d.Donor], "donor %s listed twice", d.Donor)
		seen[d.Donor] = true
		sum += d.Amount
	}
	require.Equal(t, c.TotalRaised, sum)
	require.Equal(t, c.DonorCount, int64(len(donors)))
}
