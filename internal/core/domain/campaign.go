package domain

import (
	"errors"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusPendingApproval CampaignStatus = "pending_approval"
	StatusActive          CampaignStatus = "active"
	StatusPaused          CampaignStatus = "paused"
	StatusEnded           CampaignStatus = "ended"
)

var (
	ErrInvalidTransition = errors.New("invalid campaign status transition")
	ErrInvalidCampaign   = errors.New("invalid campaign parameters")
)

// Campaign is a seller-funded promotion of exactly one product or service.
// Monetary amounts are stored in integer minor units (e.g. cents). MaxCPC is
// derived once at creation as TotalBudget / TargetAudience and never changes.
type Campaign struct {
	ID             int64
	SellerID       int64
	Name           string
	ProductID      *int64
	ServiceID      *int64
	TotalBudget    int64
	SpentAmount    int64
	MaxCPC         int64
	TargetAudience int64
	StartAt        time.Time
	EndAt          time.Time
	Status         CampaignStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCampaign validates seller input and returns a campaign in
// pending_approval. Exactly one of productID/serviceID must be set. The
// derived MaxCPC must be at least one minor unit, otherwise the budget could
// never be exhausted.
func NewCampaign(sellerID int64, name string, productID, serviceID *int64, totalBudget, targetAudience int64, startAt, endAt time.Time) (*Campaign, error) {
	if name == "" {
		return nil, ErrInvalidCampaign
	}
	if (productID == nil) == (serviceID == nil) {
		return nil, ErrInvalidCampaign
	}
	if totalBudget <= 0 || targetAudience <= 0 {
		return nil, ErrInvalidCampaign
	}
	if endAt.Before(startAt) {
		return nil, ErrInvalidCampaign
	}
	maxCPC := totalBudget / targetAudience
	if maxCPC <= 0 {
		return nil, ErrInvalidCampaign
	}
	return &Campaign{
		SellerID:       sellerID,
		Name:           name,
		ProductID:      productID,
		ServiceID:      serviceID,
		TotalBudget:    totalBudget,
		MaxCPC:         maxCPC,
		TargetAudience: targetAudience,
		StartAt:        startAt,
		EndAt:          endAt,
		Status:         StatusPendingApproval,
	}, nil
}

// Billable reports whether one more click may be charged right now: the
// campaign is active, now falls within [StartAt, EndAt] inclusive, and a
// full MaxCPC still fits under the budget ceiling.
func (c *Campaign) Billable(now time.Time) bool {
	if c.Status != StatusActive {
		return false
	}
	if now.Before(c.StartAt) || now.After(c.EndAt) {
		return false
	}
	return c.SpentAmount+c.MaxCPC <= c.TotalBudget
}

// Debit charges one click against the budget. The caller must have verified
// Billable first; Debit enforces the ceiling again and flips the campaign to
// ended once the budget is fully spent. Ended is terminal.
func (c *Campaign) Debit() error {
	if c.SpentAmount+c.MaxCPC > c.TotalBudget {
		return ErrInvalidTransition
	}
	c.SpentAmount += c.MaxCPC
	if c.SpentAmount >= c.TotalBudget {
		c.Status = StatusEnded
	}
	return nil
}

// Approve moves a pending campaign to active. Admin-only.
func (c *Campaign) Approve() error {
	if c.Status != StatusPendingApproval {
		return ErrInvalidTransition
	}
	c.Status = StatusActive
	return nil
}

// Pause suspends an active campaign.
func (c *Campaign) Pause() error {
	if c.Status != StatusActive {
		return ErrInvalidTransition
	}
	c.Status = StatusPaused
	return nil
}

// Resume reactivates a paused campaign.
func (c *Campaign) Resume() error {
	if c.Status != StatusPaused {
		return ErrInvalidTransition
	}
	c.Status = StatusActive
	return nil
}
