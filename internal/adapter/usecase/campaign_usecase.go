package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// CampaignUseCase accepts donations and pays out withdrawals. Every
// mutation runs inside one repository Update, so a failed token transfer
// leaves the ledger untouched.
type CampaignUseCase struct {
	base
	repo         port.CampaignRepository
	feeRecipient domain.Address
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase returns a use case paying platform fees to
// feeRecipient.
func NewCampaignUseCase(repo port.CampaignRepository, feeRecipient domain.Address, opts ...Option) (*CampaignUseCase, error) {
	if feeRecipient.IsZero() {
		return nil, domain.ErrInvalidFeeRecipient
	}
	return &CampaignUseCase{base: newBase(opts), repo: repo, feeRecipient: feeRecipient}, nil
}

// Donate pulls amount from caller into the campaign's custody and credits
// caller's cumulative total.
func (u *CampaignUseCase) Donate(ctx context.Context, caller, ref domain.Address, amount domain.Amount) (port.DonationReceipt, error) {
	if caller.IsZero() {
		return port.DonationReceipt{}, domain.ErrUnauthenticated
	}
	var (
		receipt port.DonationReceipt
		now     = u.now()
	)
	err := u.repo.Update(ctx, ref, func(ctx context.Context, tx port.LedgerTx) error {
		c := tx.Campaign()
		if err := c.CheckDonation(amount, now); err != nil {
			return err
		}
		// Custody first: a donation is only credited once its funds arrived.
		if err := tx.Token().TransferFrom(ctx, c.Address, caller, c.Address, amount); err != nil {
			return fmt.Errorf("pull donation: %w", err)
		}
		donorTotal, first, err := tx.Credit(ctx, caller, amount)
		if err != nil {
			return err
		}
		c.ApplyDonation(amount, first)
		receipt = port.DonationReceipt{
			Campaign:    c.Address,
			Donor:       caller,
			Amount:      amount,
			DonorTotal:  donorTotal,
			TotalRaised: c.TotalRaised,
			Status:      c.Status(now),
		}
		return nil
	})
	if err != nil {
		return port.DonationReceipt{}, err
	}
	u.logger.Info("donation made",
		slog.String("campaign", ref.String()),
		slog.String("donor", caller.String()),
		slog.Int64("amount", int64(amount)),
		slog.Int64("total", int64(receipt.TotalRaised)))
	u.publish(ctx, domain.DonationMade{
		CampaignAddr: ref,
		Donor:        caller,
		Amount:       amount,
		DonorTotal:   receipt.DonorTotal,
		NewTotal:     receipt.TotalRaised,
		At:           now,
	})
	return receipt, nil
}

// Withdraw pays totalRaised minus the platform fee to the beneficiary and
// the fee to the platform in one transaction, then marks the campaign
// withdrawn. Refunding donors of an expired campaign instead of paying out
// would replace this method; it is not offered.
func (u *CampaignUseCase) Withdraw(ctx context.Context, caller, ref domain.Address) (port.WithdrawalReceipt, error) {
	var (
		receipt port.WithdrawalReceipt
		now     = u.now()
	)
	err := u.repo.Update(ctx, ref, func(ctx context.Context, tx port.LedgerTx) error {
		c := tx.Campaign()
		if err := c.CheckWithdraw(caller, now); err != nil {
			return err
		}
		custody, err := tx.Token().BalanceOf(ctx, c.Address)
		if err != nil {
			return err
		}
		if custody < c.TotalRaised {
			return fmt.Errorf("%w: holds %d, owes %d", domain.ErrInsufficientCustody, custody, c.TotalRaised)
		}
		net, fee := c.Payout()
		if net > 0 {
			if err = tx.Token().Transfer(ctx, c.Address, c.Beneficiary, net); err != nil {
				return fmt.Errorf("pay beneficiary: %w", err)
			}
		}
		if fee > 0 {
			if err = tx.Token().Transfer(ctx, c.Address, u.feeRecipient, fee); err != nil {
				return fmt.Errorf("pay platform fee: %w", err)
			}
		}
		c.MarkWithdrawn(net, fee, now)
		receipt = port.WithdrawalReceipt{
			Campaign:     c.Address,
			Beneficiary:  c.Beneficiary,
			FeeRecipient: u.feeRecipient,
			TotalRaised:  c.TotalRaised,
			NetAmount:    net,
			FeeAmount:    fee,
			WithdrawnAt:  now,
		}
		return nil
	})
	if err != nil {
		return port.WithdrawalReceipt{}, err
	}
	u.logger.Info("campaign withdrawn",
		slog.String("campaign", ref.String()),
		slog.String("beneficiary", receipt.Beneficiary.String()),
		slog.Int64("net", int64(receipt.NetAmount)),
		slog.Int64("fee", int64(receipt.FeeAmount)))
	u.publish(ctx, domain.Withdrawal{
		CampaignAddr: ref,
		Beneficiary:  receipt.Beneficiary,
		TotalRaised:  receipt.TotalRaised,
		NetAmount:    receipt.NetAmount,
		FeeAmount:    receipt.FeeAmount,
		At:           now,
	})
	return receipt, nil
}

func (u *CampaignUseCase) GetDonors(ctx context.Context, ref domain.Address, page domain.Page) ([]domain.DonorTotal, error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return u.repo.Donors(ctx, ref, page)
}

func (u *CampaignUseCase) GetDonationAmount(ctx context.Context, ref, donor domain.Address) (domain.Amount, error) {
	return u.repo.DonationOf(ctx, ref, donor)
}

func (u *CampaignUseCase) GetProgressPercentage(ctx context.Context, ref domain.Address) (int64, error) {
	c, err := u.repo.Get(ctx, ref)
	if err != nil {
		return 0, err
	}
	return c.ProgressBps(), nil
}

func (u *CampaignUseCase) GetRemainingTime(ctx context.Context, ref domain.Address) (time.Duration, error) {
	c, err := u.repo.Get(ctx, ref)
	if err != nil {
		return 0, err
	}
	return c.RemainingTime(u.nowFn()), nil
}

func (u *CampaignUseCase) CanWithdraw(ctx context.Context, ref domain.Address) (bool, error) {
	c, err := u.repo.Get(ctx, ref)
	if err != nil {
		return false, err
	}
	return c.CanWithdraw(u.nowFn()), nil
}
