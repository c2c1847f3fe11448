package port

import (
	"context"
	"errors"
	"time"

	"vendora-ads/internal/core/domain"
)

var (
	ErrInsufficientBudget = errors.New("insufficient budget")
	ErrCampaignNotActive  = errors.New("campaign is not active")
	ErrCampaignNotFound   = errors.New("campaign not found")
)

// CampaignRepository defines the persistence layer for campaigns and the
// click ledger. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe and perform the click debit
// atomically.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id, or (nil, nil) when absent.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCampaign persists a new campaign and fills in its generated
	// id and timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateStatus persists a lifecycle transition already validated by
	// the domain layer.
	UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error
	// ListSellerCampaigns returns all campaigns owned by a seller, newest
	// first.
	ListSellerCampaigns(ctx context.Context, sellerID int64) ([]domain.Campaign, error)

	// HasRecentClick reports whether the ledger holds a click against adID
	// since the given time matching either the authenticated user (when
	// present) or the visitor token.
	HasRecentClick(ctx context.Context, adID int64, userID *int64, visitorID string, since time.Time) (bool, error)
	// CreateClickAndDebit charges click.Cost against the campaign budget,
	// flips the campaign to ended when the budget is exhausted, and inserts
	// the click record. All three effects commit together or not at all.
	// Returns ErrInsufficientBudget or ErrCampaignNotActive when the
	// campaign can no longer be charged.
	CreateClickAndDebit(ctx context.Context, click *domain.Click) error

	// GetStats returns aggregated billable clicks and spend for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
