package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// FactoryUseCase creates campaigns and serves registry queries. It
// implements port.FactoryUseCase.
type FactoryUseCase struct {
	base
	repo     port.CampaignRepository
	settings domain.FactorySettings
	newID    func() uuid.UUID
}

var _ port.FactoryUseCase = (*FactoryUseCase)(nil)

// NewFactoryUseCase binds a factory to the token and fee settings. Invalid
// settings (zero token, fee above the maximum, zero fee recipient) are
// rejected here and never again.
func NewFactoryUseCase(repo port.CampaignRepository, settings domain.FactorySettings, opts ...Option) (*FactoryUseCase, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &FactoryUseCase{
		base:     newBase(opts),
		repo:     repo,
		settings: settings,
		newID:    uuid.New,
	}, nil
}

// CreateCampaign registers a new campaign owned by caller. The first
// failing parameter check determines the error.
func (u *FactoryUseCase) CreateCampaign(ctx context.Context, caller domain.Address, params domain.CreateParams) (domain.Campaign, error) {
	if caller.IsZero() {
		return domain.Campaign{}, domain.ErrUnauthenticated
	}
	if err := params.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	authority := params.Authority
	if authority == "" {
		authority = u.settings.DefaultAuthority
	}
	now := u.now()
	c := domain.Campaign{
		Address:     domain.NewCampaignAddress(u.newID()),
		Creator:     caller,
		Beneficiary: params.Beneficiary,
		Title:       params.Title,
		Description: params.Description,
		GoalAmount:  params.GoalAmount,
		CreatedAt:   now,
		Deadline:    params.Deadline(now),
		Authority:   authority,
		FeeBps:      u.settings.FeeBps,
		IsActive:    true,
	}
	if err := u.repo.Create(ctx, &c); err != nil {
		return domain.Campaign{}, err
	}
	u.logger.Info("campaign created",
		slog.String("campaign", c.Address.String()),
		slog.String("creator", caller.String()),
		slog.Int64("goal", int64(c.GoalAmount)))
	u.publish(ctx, domain.CampaignCreated{
		CampaignAddr: c.Address,
		Creator:      c.Creator,
		Title:        c.Title,
		GoalAmount:   c.GoalAmount,
		Deadline:     c.Deadline,
	})
	return c, nil
}

// DeactivateCampaign clears the listing flag. It does not touch funds or
// status, and a second call fails with domain.ErrAlreadyInactive.
func (u *FactoryUseCase) DeactivateCampaign(ctx context.Context, caller, ref domain.Address) error {
	now := u.now()
	err := u.repo.Update(ctx, ref, func(_ context.Context, tx port.LedgerTx) error {
		c := tx.Campaign()
		if caller.IsZero() || caller != c.Creator {
			return domain.ErrNotCreator
		}
		if !c.IsActive {
			return domain.ErrAlreadyInactive
		}
		c.IsActive = false
		return nil
	})
	if err != nil {
		return err
	}
	u.publish(ctx, domain.CampaignDeactivated{CampaignAddr: ref, At: now})
	return nil
}

func (u *FactoryUseCase) addresses(ctx context.Context, filter port.CampaignFilter) ([]domain.Address, error) {
	campaigns, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Address, len(campaigns))
	for i := range campaigns {
		out[i] = campaigns[i].Address
	}
	return out, nil
}

func (u *FactoryUseCase) GetAllCampaigns(ctx context.Context) ([]domain.Address, error) {
	return u.addresses(ctx, port.CampaignFilter{})
}

func (u *FactoryUseCase) GetActiveCampaigns(ctx context.Context) ([]domain.Address, error) {
	return u.addresses(ctx, port.CampaignFilter{ActiveOnly: true})
}

func (u *FactoryUseCase) GetCampaignsByCreator(ctx context.Context, creator domain.Address) ([]domain.Address, error) {
	if creator.IsZero() {
		return []domain.Address{}, nil
	}
	return u.addresses(ctx, port.CampaignFilter{Creator: creator})
}

// IsValidCampaign reports registry membership without failing on unknown
// references.
func (u *FactoryUseCase) IsValidCampaign(ctx context.Context, ref domain.Address) (bool, error) {
	_, err := u.repo.Get(ctx, ref)
	if err == nil {
		return true, nil
	}
	if domain.KindOf(err) == domain.KindNotFound {
		return false, nil
	}
	return false, err
}

func (u *FactoryUseCase) GetCampaignInfo(ctx context.Context, ref domain.Address) (domain.Info, error) {
	c, err := u.repo.Get(ctx, ref)
	if err != nil {
		return domain.Info{}, err
	}
	return c.InfoOf(), nil
}

func (u *FactoryUseCase) GetCampaignDetails(ctx context.Context, ref domain.Address) (domain.Details, error) {
	c, err := u.repo.Get(ctx, ref)
	if err != nil {
		return domain.Details{}, err
	}
	return c.DetailsAt(u.nowFn()), nil
}

func (u *FactoryUseCase) TotalCampaigns(ctx context.Context) (int64, error) {
	return u.repo.Count(ctx)
}

func (u *FactoryUseCase) GetUSDCToken() domain.Address {
	return u.settings.Token
}

func (u *FactoryUseCase) Settings() domain.FactorySettings {
	return u.settings
}
