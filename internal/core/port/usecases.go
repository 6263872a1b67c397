package port

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
)

// FactoryUseCase creates campaigns and answers registry queries. This is
// the primary port for campaign creators and listings.
type FactoryUseCase interface {
	// CreateCampaign validates params, registers a new campaign owned by
	// caller and publishes a creation event.
	CreateCampaign(ctx context.Context, caller domain.Address, params domain.CreateParams) (domain.Campaign, error)
	// DeactivateCampaign hides a campaign from active listings. Only the
	// creator may call it, and only once.
	DeactivateCampaign(ctx context.Context, caller, ref domain.Address) error

	GetAllCampaigns(ctx context.Context) ([]domain.Address, error)
	GetActiveCampaigns(ctx context.Context) ([]domain.Address, error)
	GetCampaignsByCreator(ctx context.Context, creator domain.Address) ([]domain.Address, error)
	IsValidCampaign(ctx context.Context, ref domain.Address) (bool, error)
	GetCampaignInfo(ctx context.Context, ref domain.Address) (domain.Info, error)
	GetCampaignDetails(ctx context.Context, ref domain.Address) (domain.Details, error)
	TotalCampaigns(ctx context.Context) (int64, error)
	// GetUSDCToken returns the token bound at construction.
	GetUSDCToken() domain.Address
	Settings() domain.FactorySettings
}

// CampaignUseCase moves money into and out of a single campaign.
type CampaignUseCase interface {
	// Donate pulls amount from caller's approved balance into the campaign.
	Donate(ctx context.Context, caller, ref domain.Address, amount domain.Amount) (DonationReceipt, error)
	// Withdraw pays out the raised total minus the platform fee and moves
	// the campaign to its terminal state.
	Withdraw(ctx context.Context, caller, ref domain.Address) (WithdrawalReceipt, error)

	GetDonors(ctx context.Context, ref domain.Address, page domain.Page) ([]domain.DonorTotal, error)
	GetDonationAmount(ctx context.Context, ref, donor domain.Address) (domain.Amount, error)
	// GetProgressPercentage returns progress in basis points.
	GetProgressPercentage(ctx context.Context, ref domain.Address) (int64, error)
	GetRemainingTime(ctx context.Context, ref domain.Address) (time.Duration, error)
	CanWithdraw(ctx context.Context, ref domain.Address) (bool, error)
}

// ReportUseCase aggregates read-only views for dashboards and status
// checkers.
type ReportUseCase interface {
	CampaignReport(ctx context.Context) (*CampaignReport, error)
}

// DonationReceipt is returned by a successful donation.
type DonationReceipt struct {
	Campaign    domain.Address
	Donor       domain.Address
	Amount      domain.Amount
	DonorTotal  domain.Amount
	TotalRaised domain.Amount
	Status      domain.Status
}

// WithdrawalReceipt is returned by a successful withdrawal.
type WithdrawalReceipt struct {
	Campaign     domain.Address
	Beneficiary  domain.Address
	FeeRecipient domain.Address
	TotalRaised  domain.Amount
	NetAmount    domain.Amount
	FeeAmount    domain.Amount
	WithdrawnAt  time.Time
}

// CampaignReportRow is one campaign in a report. When Err is set the other
// fields past Address may be incomplete.
type CampaignReportRow struct {
	Address     domain.Address
	Info        domain.Info
	Details     domain.Details
	ProgressBps int64
	Remaining   time.Duration
	TopDonors   []domain.DonorTotal
	MoreDonors  int64
	Err         error
}

// CampaignReportSummary totals every row that loaded without error.
type CampaignReportSummary struct {
	TotalCampaigns     int64
	ActiveCampaigns    int
	InactiveCampaigns  int
	CompletedCampaigns int
	TotalGoal          domain.Amount
	TotalRaised        domain.Amount
	TotalDonors        int64
	OverallProgressBps int64
	FailedRows         int
	// Capped is set when TotalGoal or TotalRaised stopped at
	// domain.MaxAmount; OverallProgressBps is then approximate.
	Capped bool
}

// CampaignReport is the output of ReportUseCase.CampaignReport.
type CampaignReport struct {
	GeneratedAt time.Time
	Rows        []CampaignReportRow
	Summary     CampaignReportSummary
}
