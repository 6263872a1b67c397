package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port/mocks"
)

// TestCreateCampaign covers a single successful creation.
func TestCreateCampaign(t *testing.T) {
	f := newFixture(t, 250)
	ctx := context.Background()

	c, err := f.factory.CreateCampaign(ctx, creator, defaultParams())
	require.NoError(t, err)

	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, creator, c.Creator)
	assert.True(t, c.IsActive)
	assert.Equal(t, f.clock.Now().AddDate(0, 0, 30), c.Deadline)
	assert.Equal(t, domain.WithdrawByBeneficiary, c.Authority)
	assert.Equal(t, int64(250), c.FeeBps)

	total, err := f.factory.TotalCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	all, err := f.factory.GetAllCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Address{c.Address}, all)

	ok, err := f.factory.IsValidCampaign(ctx, c.Address)
	require.NoError(t, err)
	assert.True(t, ok)

	details, err := f.factory.GetCampaignDetails(ctx, c.Address)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, details.Status)
	assert.Equal(t, usdc("1000"), details.GoalAmount)
	assert.Equal(t, beneficiary, details.Beneficiary)
}

func TestCreateCampaignValidation(t *testing.T) {
	f := newFixture(t, 250)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(p *domain.CreateParams)
		want   error
	}{
		{"empty title", func(p *domain.CreateParams) { p.Title = "" }, domain.ErrEmptyTitle},
		{"blank title", func(p *domain.CreateParams) { p.Title = "   " }, domain.ErrEmptyTitle},
		{"empty description", func(p *domain.CreateParams) { p.Description = "" }, domain.ErrEmptyDescription},
		{"zero goal", func(p *domain.CreateParams) { p.GoalAmount = 0 }, domain.ErrInvalidGoal},
		{"zero duration", func(p *domain.CreateParams) { p.DurationDays = 0 }, domain.ErrInvalidDuration},
		{"duration above a year", func(p *domain.CreateParams) { p.DurationDays = 400 }, domain.ErrInvalidDuration},
		{"zero beneficiary", func(p *domain.CreateParams) { p.Beneficiary = domain.ZeroAddress }, domain.ErrInvalidBeneficiary},
		{"unknown authority", func(p *domain.CreateParams) { p.Authority = "anyone" }, domain.ErrInvalidWithdrawAuthority},
		{"first violation wins", func(p *domain.CreateParams) { p.Title = ""; p.GoalAmount = 0 }, domain.ErrEmptyTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.mutate(&p)
			_, err := f.factory.CreateCampaign(ctx, creator, p)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}

	total, err := f.factory.TotalCampaigns(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateCampaignDurationBounds(t *testing.T) {
	f := newFixture(t, 250)
	for _, days := range []int{domain.MinDurationDays, domain.MaxDurationDays} {
		p := defaultParams()
		p.DurationDays = days
		_, err := f.factory.CreateCampaign(context.Background(), creator, p)
		require.NoError(t, err, "days=%d", days)
	}
}

func TestCreateCampaignRequiresCaller(t *testing.T) {
	f := newFixture(t, 250)
	_, err := f.factory.CreateCampaign(context.Background(), domain.ZeroAddress, defaultParams())
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestNewFactoryUseCaseSettings(t *testing.T) {
	valid := domain.FactorySettings{
		Token:            tokenAddr,
		FeeBps:           250,
		FeeRecipient:     feeRecipient,
		DefaultAuthority: domain.WithdrawByBeneficiary,
	}
	tests := []struct {
		name   string
		mutate func(s *domain.FactorySettings)
		want   error
	}{
		{"zero token", func(s *domain.FactorySettings) { s.Token = domain.ZeroAddress }, domain.ErrInvalidTokenAddress},
		{"fee above maximum", func(s *domain.FactorySettings) { s.FeeBps = 1001 }, domain.ErrFeeTooHigh},
		{"negative fee", func(s *domain.FactorySettings) { s.FeeBps = -1 }, domain.ErrFeeTooHigh},
		{"zero fee recipient", func(s *domain.FactorySettings) { s.FeeRecipient = "" }, domain.ErrInvalidFeeRecipient},
		{"bad authority", func(s *domain.FactorySettings) { s.DefaultAuthority = "" }, domain.ErrInvalidWithdrawAuthority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			_, err := NewFactoryUseCase(mocks.NewMockCampaignRepository(t), s)
			require.ErrorIs(t, err, tt.want)
		})
	}

	u, err := NewFactoryUseCase(mocks.NewMockCampaignRepository(t), valid)
	require.NoError(t, err)
	assert.Equal(t, tokenAddr, u.GetUSDCToken())
}

func TestCampaignsByCreator(t *testing.T) {
	f := newFixture(t, 250)
	ctx := context.Background()

	a := f.create(t, creator, defaultParams())
	b := f.create(t, creator2, defaultParams())
	c := f.create(t, creator, defaultParams())

	mine, err := f.factory.GetCampaignsByCreator(ctx, creator)
	require.NoError(t, err)
	assert.Equal(t, []domain.Address{a, c}, mine)

	theirs, err := f.factory.GetCampaignsByCreator(ctx, creator2)
	require.NoError(t, err)
	assert.Equal(t, []domain.Address{b}, theirs)

	none, err := f.factory.GetCampaignsByCreator(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := f.factory.GetAllCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Address{a, b, c}, all)
}

// Deactivation hides a campaign from active listings once; a second call
// is an error.
func TestDeactivateCampaign(t *testing.T) {
	f := newFixture(t, 250)
	ctx := context.Background()
	ref := f.create(t, creator, defaultParams())
	other := f.create(t, creator, defaultParams())

	err := f.factory.DeactivateCampaign(ctx, stranger, ref)
	require.ErrorIs(t, err, domain.ErrNotCreator)
	info, err := f.factory.GetCampaignInfo(ctx, ref)
	require.NoError(t, err)
	assert.True(t, info.IsActive, "failed deactivation must not change state")

	require.NoError(t, f.factory.DeactivateCampaign(ctx, creator, ref))

	info, err = f.factory.GetCampaignInfo(ctx, ref)
	require.NoError(t, err)
	assert.False(t, info.IsActive)

	active, err := f.factory.GetActiveCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Address{other}, active)

	err = f.factory.DeactivateCampaign(ctx, creator, ref)
	require.ErrorIs(t, err, domain.ErrAlreadyInactive)

	details, err := f.factory.GetCampaignDetails(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, details.Status, "deactivation is not a financial transition")
}

func TestDeactivatedCampaignStillAcceptsWithdrawal(t *testing.T) {
	f := newFixture(t, 250)
	ctx := context.Background()
	ref := f.create(t, creator, defaultParams())
	f.fund(t, donor1, ref, usdc("1000"))
	_, err := f.campaigns.Donate(ctx, donor1, ref, usdc("1000"))
	require.NoError(t, err)

	require.NoError(t, f.factory.DeactivateCampaign(ctx, creator, ref))

	_, err = f.campaigns.Withdraw(ctx, beneficiary, ref)
	require.NoError(t, err)
}

func TestIsValidCampaignUnknown(t *testing.T) {
	f := newFixture(t, 250)
	ok, err := f.factory.IsValidCampaign(context.Background(), stranger)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.factory.GetCampaignDetails(context.Background(), stranger)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestIsValidCampaignRepositoryError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	boom := errors.New("connection reset")
	repo.EXPECT().Get(mock.Anything, stranger).Return(domain.Campaign{}, boom)

	u, err := NewFactoryUseCase(repo, domain.FactorySettings{
		Token:            tokenAddr,
		FeeBps:           100,
		FeeRecipient:     feeRecipient,
		DefaultAuthority: domain.WithdrawByBeneficiary,
	})
	require.NoError(t, err)

	_, err = u.IsValidCampaign(context.Background(), stranger)
	require.ErrorIs(t, err, boom)
}

func TestCreateCampaignPublishesEvent(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	events := mocks.NewMockEventPublisher(t)

	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, c *domain.Campaign) { c.ID = 7 }).
		Return(nil)
	events.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			created, ok := e.(domain.CampaignCreated)
			return ok && created.Creator == creator && created.GoalAmount == usdc("1000")
		})).
		Return(errors.New("broker down"))

	u, err := NewFactoryUseCase(repo, domain.FactorySettings{
		Token:            tokenAddr,
		FeeBps:           100,
		FeeRecipient:     feeRecipient,
		DefaultAuthority: domain.WithdrawByBeneficiaryOrCreator,
	}, WithEvents(events))
	require.NoError(t, err)

	// A publish failure after commit does not undo the creation.
	c, err := u.CreateCampaign(context.Background(), creator, defaultParams())
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, domain.WithdrawByBeneficiaryOrCreator, c.Authority)
}

func TestCreateCampaignRepositoryFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	boom := errors.New("insert failed")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(boom)

	u, err := NewFactoryUseCase(repo, domain.FactorySettings{
		Token:            tokenAddr,
		FeeBps:           100,
		FeeRecipient:     feeRecipient,
		DefaultAuthority: domain.WithdrawByBeneficiary,
	}, WithEvents(mocks.NewMockEventPublisher(t)))
	require.NoError(t, err)

	_, err = u.CreateCampaign(context.Background(), creator, defaultParams())
	require.ErrorIs(t, err, boom)
}
