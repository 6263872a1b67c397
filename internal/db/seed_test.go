package db

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/core/domain"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	tokenAddr := domain.MustParseAddress("0x1c7d4b196cb0c7b01d743fbc6116a902379c7238")
	owner := demoAddress(0xf0, 0)
	fee := demoAddress(0xfe, 0)

	token := memory.NewToken(tokenAddr, owner)
	store := memory.NewStore(token)
	factory, err := usecase.NewFactoryUseCase(store, domain.FactorySettings{
		Token:            tokenAddr,
		FeeBps:           250,
		FeeRecipient:     fee,
		DefaultAuthority: domain.WithdrawByBeneficiary,
	})
	require.NoError(t, err)
	campaigns, err := usecase.NewCampaignUseCase(store, fee)
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, token, factory, campaigns, slog.New(slog.NewTextHandler(io.Discard, nil))))

	total, err := factory.TotalCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(demoCampaigns)), total)

	refs, err := factory.GetAllCampaigns(ctx)
	require.NoError(t, err)
	shelter, err := factory.GetCampaignDetails(ctx, refs[2])
	require.NoError(t, err)
	assert.Equal(t, "Animal shelter roof", shelter.Title)
	assert.Equal(t, domain.StatusCompleted, shelter.Status)
	assert.Equal(t, domain.MustParseUnits("800"), shelter.TotalRaised)
	assert.Equal(t, int64(3), shelter.DonorCount)

	// A second run leaves the registry as it is.
	require.NoError(t, Seed(ctx, token, factory, campaigns, slog.New(slog.NewTextHandler(io.Discard, nil))))
	total, err = factory.TotalCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(demoCampaigns)), total)
}

func TestDemoAddress(t *testing.T) {
	assert.Equal(t, domain.Address("0xc000000000000000000000000000000000000001"), demoAddress(0xc0, 0))
}
