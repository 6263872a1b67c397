package usecase

import (
	"context"
	"log/slog"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// topDonors is how many donors each report row lists.
const topDonors = 5

// ReportUseCase builds dashboard reports from the public query surface
// only; it never mutates state.
type ReportUseCase struct {
	base
	factory   port.FactoryUseCase
	campaigns port.CampaignUseCase
}

var _ port.ReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(factory port.FactoryUseCase, campaigns port.CampaignUseCase, opts ...Option) *ReportUseCase {
	return &ReportUseCase{base: newBase(opts), factory: factory, campaigns: campaigns}
}

// CampaignReport lists every campaign with its live state. A campaign that
// fails to load is reported in its row and excluded from the summary; the
// rest of the report is still produced.
func (u *ReportUseCase) CampaignReport(ctx context.Context) (*port.CampaignReport, error) {
	refs, err := u.factory.GetAllCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	total, err := u.factory.TotalCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	report := &port.CampaignReport{
		GeneratedAt: u.now(),
		Rows:        make([]port.CampaignReportRow, 0, len(refs)),
	}
	sum := &report.Summary
	sum.TotalCampaigns = total
	for _, ref := range refs {
		row := u.row(ctx, ref)
		report.Rows = append(report.Rows, row)
		if row.Err != nil {
			sum.FailedRows++
			u.logger.Warn("report row failed", slog.String("campaign", ref.String()), slog.Any("error", row.Err))
			continue
		}
		if row.Info.IsActive {
			sum.ActiveCampaigns++
		} else {
			sum.InactiveCampaigns++
		}
		if row.Details.Status == domain.StatusCompleted {
			sum.CompletedCampaigns++
		}
		sum.TotalGoal = addCapped(sum, sum.TotalGoal, row.Details.GoalAmount)
		sum.TotalRaised = addCapped(sum, sum.TotalRaised, row.Details.TotalRaised)
		sum.TotalDonors += row.Details.DonorCount
	}
	sum.OverallProgressBps = domain.ProgressBps(sum.TotalRaised, sum.TotalGoal)
	return report, nil
}

func (u *ReportUseCase) row(ctx context.Context, ref domain.Address) port.CampaignReportRow {
	row := port.CampaignReportRow{Address: ref}
	if row.Info, row.Err = u.factory.GetCampaignInfo(ctx, ref); row.Err != nil {
		return row
	}
	if row.Details, row.Err = u.factory.GetCampaignDetails(ctx, ref); row.Err != nil {
		return row
	}
	row.ProgressBps = domain.ProgressBps(row.Details.TotalRaised, row.Details.GoalAmount)
	if row.Remaining, row.Err = u.campaigns.GetRemainingTime(ctx, ref); row.Err != nil {
		return row
	}
	if row.Details.DonorCount > 0 {
		if row.TopDonors, row.Err = u.campaigns.GetDonors(ctx, ref, domain.Page{Limit: topDonors}); row.Err != nil {
			return row
		}
		row.MoreDonors = row.Details.DonorCount - int64(len(row.TopDonors))
	}
	return row
}

func addCapped(sum *port.CampaignReportSummary, a, b domain.Amount) domain.Amount {
	total, err := domain.AddAmounts(a, b)
	if err != nil {
		sum.Capped = true
		return domain.MaxAmount
	}
	return total
}
