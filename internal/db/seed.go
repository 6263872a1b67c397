package db

import (
	"context"
	"fmt"
	"log/slog"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// demoCampaign is one seeded fundraiser and the donations it receives.
type demoCampaign struct {
	title       string
	description string
	goal        string
	days        int
	donations   []string
}

var demoCampaigns = []demoCampaign{
	{"Community garden", "Raised beds and tools for the east side lot", "5000", 30, []string{"250", "1200.5", "75"}},
	{"School laptops", "Refurbished laptops for the robotics club", "12000", 60, []string{"3000", "500"}},
	{"Animal shelter roof", "Emergency roof repair before winter", "800", 14, []string{"400", "375", "25"}},
	{"Open source docs sprint", "Stipends for a week of documentation work", "2500", 7, nil},
}

// Seed creates demo campaigns through the use cases, so it works for every
// store. Donors are funded from the token faucet. Creator, beneficiary and
// donor addresses are derived from small integers. A registry that
// already holds campaigns is left alone.
func Seed(ctx context.Context, token port.TokenLedger, factory port.FactoryUseCase, campaigns port.CampaignUseCase, logger *slog.Logger) error {
	total, err := factory.TotalCampaigns(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		logger.Info("seed skipped", slog.Int64("campaigns", total))
		return nil
	}
	for i, demo := range demoCampaigns {
		creator := demoAddress(0xc0, i)
		c, err := factory.CreateCampaign(ctx, creator, domain.CreateParams{
			Title:        demo.title,
			Description:  demo.description,
			GoalAmount:   domain.MustParseUnits(demo.goal),
			DurationDays: demo.days,
			Beneficiary:  demoAddress(0xb0, i),
		})
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", demo.title, err)
		}
		for j, raw := range demo.donations {
			donor := demoAddress(0xd0, j)
			amount := domain.MustParseUnits(raw)
			if err = token.Faucet(ctx, donor, amount); err != nil {
				return fmt.Errorf("seed faucet: %w", err)
			}
			if err = token.Approve(ctx, donor, c.Address, amount); err != nil {
				return fmt.Errorf("seed approve: %w", err)
			}
			if _, err = campaigns.Donate(ctx, donor, c.Address, amount); err != nil {
				return fmt.Errorf("seed donation to %q: %w", demo.title, err)
			}
		}
		logger.Info("seeded campaign",
			slog.String("campaign", c.Address.String()),
			slog.String("title", demo.title),
			slog.Int("donations", len(demo.donations)))
	}
	return nil
}

func demoAddress(prefix byte, n int) domain.Address {
	return domain.MustParseAddress(fmt.Sprintf("0x%02x%038x", prefix, n+1))
}
