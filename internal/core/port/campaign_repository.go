package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// CampaignFilter narrows List. The zero value lists every campaign.
type CampaignFilter struct {
	ActiveOnly bool
	Creator    domain.Address
}

// CampaignRepository is the registry of campaigns and their donation
// ledgers. Implementations must be concurrency-safe: Create calls are
// serialised so IDs follow creation order, and Update holds an exclusive
// lock on one campaign for the duration of fn.
type CampaignRepository interface {
	// Create appends c to the registry and assigns c.ID.
	Create(ctx context.Context, c *domain.Campaign) error
	// Get returns domain.ErrCampaignNotFound for unknown references.
	Get(ctx context.Context, ref domain.Address) (domain.Campaign, error)
	// List returns campaigns in creation order.
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	Count(ctx context.Context) (int64, error)
	// DonationOf returns 0 for addresses that never donated.
	DonationOf(ctx context.Context, ref, donor domain.Address) (domain.Amount, error)
	// Donors lists donor totals in first-donation order.
	Donors(ctx context.Context, ref domain.Address, page domain.Page) ([]domain.DonorTotal, error)
	// Update runs fn against the locked campaign. Everything fn does through
	// tx (campaign fields, donation credits, token movements) is committed
	// together when fn returns nil and discarded otherwise.
	Update(ctx context.Context, ref domain.Address, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx is the view of one locked campaign inside Update.
type LedgerTx interface {
	// Campaign is the locked row; field changes are persisted on commit.
	Campaign() *domain.Campaign
	// Token moves funds inside the same transaction.
	Token() Token
	// Credit adds amount to donor's cumulative total and reports the new
	// total and whether this is the donor's first donation.
	Credit(ctx context.Context, donor domain.Address, amount domain.Amount) (total domain.Amount, first bool, err error)
}
