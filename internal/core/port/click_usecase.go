package port

import (
	"context"
	"time"

	"vendora-ads/internal/core/domain"
)

// ClickAccountant is the primary port for ad click-through accounting. It
// decides whether a click is billable, debits the campaign budget exactly
// once per visitor and dedup window, and always yields a redirect target.
// Mock implementations can be generated from this interface for testing.
type ClickAccountant interface {
	// RecordClick processes one click-through event. It never fails from
	// the caller's point of view: billing problems are logged and
	// swallowed, and the result always carries a usable redirect URL.
	RecordClick(ctx context.Context, req ClickRequest) ClickResult
}

// ClickRequest carries the inbound click-through event. VisitorID is always
// set; the HTTP layer mints a fresh token before calling when the browser
// presented no cookie. UserID is present only for authenticated sessions.
type ClickRequest struct {
	AdID      int64
	UserID    *int64
	VisitorID string
}

// ClickResult is the outcome of a click-through event. Billed is
// informational only; the redirect does not depend on it.
type ClickResult struct {
	RedirectURL string
	Billed      bool
}

// CampaignService exposes the campaign lifecycle operations used by the
// seller and admin surfaces.
type CampaignService interface {
	// Create validates seller input and stores a pending_approval campaign.
	Create(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// Approve transitions pending_approval -> active.
	Approve(ctx context.Context, id int64) (*domain.Campaign, error)
	// Pause transitions active -> paused.
	Pause(ctx context.Context, id int64) (*domain.Campaign, error)
	// Resume transitions paused -> active.
	Resume(ctx context.Context, id int64) (*domain.Campaign, error)
	// Get returns a campaign by id or ErrCampaignNotFound.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListBySeller returns the seller's campaigns, newest first.
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Campaign, error)
	// GetStats returns aggregated billable clicks and spend for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// CreateCampaignReq carries seller input for a new campaign. Monetary
// amounts are integer minor units; TargetAudience is the expected number of
// billable clicks the budget should cover.
type CreateCampaignReq struct {
	SellerID       int64
	Name           string
	ProductID      *int64
	ServiceID      *int64
	TotalBudget    int64
	TargetAudience int64
	StartAt        time.Time
	EndAt          time.Time
}

// StatsResp contains aggregated click counts and spend. Cost sums the cost
// of billable clicks in integer minor units.
type StatsResp struct {
	Clicks int64
	Cost   int64
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}
