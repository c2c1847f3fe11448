package usecase

import (
	"context"

	"vendora-ads/internal/core/domain"
	"vendora-ads/internal/core/port"
)

// CampaignManager implements port.CampaignService. Lifecycle transitions are
// validated by the domain type; this layer only loads, applies and persists.
type CampaignManager struct {
	repo port.CampaignRepository
}

// NewCampaignManager creates a manager backed by the provided repository.
func NewCampaignManager(repo port.CampaignRepository) *CampaignManager {
	return &CampaignManager{repo: repo}
}

// Create validates seller input and stores a new pending_approval campaign.
func (m *CampaignManager) Create(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	c, err := domain.NewCampaign(req.SellerID, req.Name, req.ProductID, req.ServiceID, req.TotalBudget, req.TargetAudience, req.StartAt, req.EndAt)
	if err != nil {
		return nil, err
	}
	if err = m.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Approve transitions a pending campaign to active.
func (m *CampaignManager) Approve(ctx context.Context, id int64) (*domain.Campaign, error) {
	return m.transition(ctx, id, (*domain.Campaign).Approve)
}

// Pause suspends an active campaign.
func (m *CampaignManager) Pause(ctx context.Context, id int64) (*domain.Campaign, error) {
	return m.transition(ctx, id, (*domain.Campaign).Pause)
}

// Resume reactivates a paused campaign.
func (m *CampaignManager) Resume(ctx context.Context, id int64) (*domain.Campaign, error) {
	return m.transition(ctx, id, (*domain.Campaign).Resume)
}

// Get returns a campaign by id or port.ErrCampaignNotFound.
func (m *CampaignManager) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := m.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// ListBySeller returns the seller's campaigns, newest first.
func (m *CampaignManager) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Campaign, error) {
	return m.repo.ListSellerCampaigns(ctx, sellerID)
}

// GetStats returns aggregated billable clicks and spend for a period.
func (m *CampaignManager) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return m.repo.GetStats(ctx, req)
}

func (m *CampaignManager) transition(ctx context.Context, id int64, apply func(*domain.Campaign) error) (*domain.Campaign, error) {
	c, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = apply(c); err != nil {
		return nil, err
	}
	if err = m.repo.UpdateStatus(ctx, c.ID, c.Status); err != nil {
		return nil, err
	}
	return c, nil
}
