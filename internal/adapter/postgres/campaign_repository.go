package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Mutations lock the campaign row with SELECT ... FOR UPDATE
// inside a serializable transaction shared with the token ledger.
type CampaignRepository struct {
	pool   *pgxpool.Pool
	tokens *TokenLedger
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a repository whose campaigns hold funds
// on tokens.
func NewCampaignRepository(pool *pgxpool.Pool, tokens *TokenLedger) *CampaignRepository {
	return &CampaignRepository{pool: pool, tokens: tokens}
}

const campaignColumns = `id, address, creator, beneficiary, title, description, goal_amount,
    created_at, deadline, withdraw_authority, fee_bps, is_active, total_raised, donor_count,
    withdrawn_at, fee_amount, net_amount`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Address, &c.Creator, &c.Beneficiary, &c.Title, &c.Description,
		&c.GoalAmount, &c.CreatedAt, &c.Deadline, &c.Authority, &c.FeeBps, &c.IsActive,
		&c.TotalRaised, &c.DonorCount, &c.WithdrawnAt, &c.FeeAmount, &c.NetAmount)
	return c, err
}

func notFound(err error, ref domain.Address) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, ref)
	}
	return err
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (address, creator, beneficiary, title, description, goal_amount, created_at, deadline,
     withdraw_authority, fee_bps, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING id`,
		c.Address, c.Creator, c.Beneficiary, c.Title, c.Description, c.GoalAmount, c.CreatedAt,
		c.Deadline, c.Authority, c.FeeBps, c.IsActive).Scan(&c.ID)
}

func (r *CampaignRepository) Get(ctx context.Context, ref domain.Address) (domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE address = $1`, ref))
	if err != nil {
		return domain.Campaign{}, notFound(err, ref)
	}
	return c, nil
}

// List returns campaigns in creation order.
func (r *CampaignRepository) List(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	creator := ""
	if !filter.Creator.IsZero() {
		creator = filter.Creator.String()
	}
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
WHERE ($1 = '' OR creator = $1) AND (is_active OR NOT $2)
ORDER BY id`, creator, filter.ActiveOnly)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, err
}

func (r *CampaignRepository) DonationOf(ctx context.Context, ref, donor domain.Address) (domain.Amount, error) {
	var amount domain.Amount
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(d.amount, 0)
FROM campaigns c LEFT JOIN donations d ON d.campaign_id = c.id AND d.donor = $2
WHERE c.address = $1`, ref, donor).Scan(&amount)
	if err != nil {
		return 0, notFound(err, ref)
	}
	return amount, nil
}

func (r *CampaignRepository) Donors(ctx context.Context, ref domain.Address, page domain.Page) ([]domain.DonorTotal, error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	var id int64
	if err = r.pool.QueryRow(ctx, `SELECT id FROM campaigns WHERE address = $1`, ref).Scan(&id); err != nil {
		return nil, notFound(err, ref)
	}
	rows, err := r.pool.Query(ctx, `SELECT donor, amount FROM donations
WHERE campaign_id = $1 ORDER BY seq OFFSET $2 LIMIT $3`, id, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DonorTotal, error) {
		var d domain.DonorTotal
		err := row.Scan(&d.Donor, &d.Amount)
		return d, err
	})
}

// Update locks the campaign row, runs fn and writes the campaign back in
// the same transaction. Donations credited and tokens moved by fn share
// that transaction.
func (r *CampaignRepository) Update(ctx context.Context, ref domain.Address, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		c, err := scanCampaign(tx.QueryRow(ctx,
			`SELECT `+campaignColumns+` FROM campaigns WHERE address = $1 FOR UPDATE`, ref))
		if err != nil {
			return notFound(err, ref)
		}
		ltx := &ledgerTx{tx: tx, c: c, token: r.tokens.ops(tx)}
		if err = fn(ctx, ltx); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns
SET is_active = $2, total_raised = $3, donor_count = $4, withdrawn_at = $5, fee_amount = $6, net_amount = $7
WHERE id = $1`,
			ltx.c.ID, ltx.c.IsActive, ltx.c.TotalRaised, ltx.c.DonorCount, ltx.c.WithdrawnAt,
			ltx.c.FeeAmount, ltx.c.NetAmount)
		return err
	})
}

type ledgerTx struct {
	tx    pgx.Tx
	c     domain.Campaign
	token tokenOps
}

func (t *ledgerTx) Campaign() *domain.Campaign { return &t.c }

func (t *ledgerTx) Token() port.Token { return t.token }

// Credit upserts the donor's cumulative total. xmax is zero only for a
// freshly inserted row, which marks the donor's first donation.
func (t *ledgerTx) Credit(ctx context.Context, donor domain.Address, amount domain.Amount) (domain.Amount, bool, error) {
	if amount <= 0 {
		return 0, false, domain.ErrInvalidAmount
	}
	var (
		total domain.Amount
		first bool
	)
	err := t.tx.QueryRow(ctx, `INSERT INTO donations (campaign_id, donor, amount) VALUES ($1,$2,$3)
ON CONFLICT (campaign_id, donor) DO UPDATE SET amount = donations.amount + EXCLUDED.amount
RETURNING amount, (xmax = 0)`, t.c.ID, donor, amount).Scan(&total, &first)
	return total, first, err
}
