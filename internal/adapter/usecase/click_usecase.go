package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vendora-ads/internal/core/domain"
	"vendora-ads/internal/core/port"
)

// CatalogPath is the fallback redirect target when a campaign or its linked
// item cannot be resolved.
const CatalogPath = "/catalog"

// DefaultDedupWindow bounds repeat billing from the same visitor against the
// same campaign.
const DefaultDedupWindow = 24 * time.Hour

// ClickAccountant implements port.ClickAccountant. It orchestrates the
// campaign store and click ledger so that navigation never depends on
// billing: every failure on the accounting path is logged and the redirect
// proceeds.
type ClickAccountant struct {
	repo   port.CampaignRepository
	logger *slog.Logger

	dedupWindow time.Duration

	// now is swapped out in tests to pin the clock.
	now func() time.Time
}

// NewClickAccountant creates the accountant with the provided repository.
// A non-positive dedupWindow falls back to DefaultDedupWindow.
func NewClickAccountant(repo port.CampaignRepository, logger *slog.Logger, dedupWindow time.Duration) *ClickAccountant {
	if dedupWindow <= 0 {
		dedupWindow = DefaultDedupWindow
	}
	return &ClickAccountant{
		repo:        repo,
		logger:      logger,
		dedupWindow: dedupWindow,
		now:         time.Now,
	}
}

// RecordClick processes one click-through event. The redirect target is
// computed before any billing decision and is returned regardless of the
// outcome. A click is debited only when the campaign is active, inside its
// schedule window, has budget for one more click, and the visitor has not
// been billed for this campaign within the dedup window.
func (a *ClickAccountant) RecordClick(ctx context.Context, req port.ClickRequest) port.ClickResult {
	camp, err := a.repo.GetCampaign(ctx, req.AdID)
	if err != nil {
		a.logger.Warn("campaign lookup failed", slog.Int64("ad_id", req.AdID), slog.Any("error", err))
		return port.ClickResult{RedirectURL: CatalogPath}
	}
	if camp == nil {
		return port.ClickResult{RedirectURL: CatalogPath}
	}

	dest := redirectTarget(camp)

	if !camp.Billable(a.now()) {
		return port.ClickResult{RedirectURL: dest}
	}

	since := a.now().Add(-a.dedupWindow)
	dup, err := a.repo.HasRecentClick(ctx, camp.ID, req.UserID, req.VisitorID, since)
	if err != nil {
		a.logger.Warn("dedup lookup failed", slog.Int64("ad_id", camp.ID), slog.Any("error", err))
		return port.ClickResult{RedirectURL: dest}
	}
	if dup {
		return port.ClickResult{RedirectURL: dest}
	}

	click := &domain.Click{
		AdID:      camp.ID,
		UserID:    req.UserID,
		VisitorID: req.VisitorID,
		Cost:      camp.MaxCPC,
	}
	if err = a.repo.CreateClickAndDebit(ctx, click); err != nil {
		// A concurrent click may have taken the last slice of budget or
		// ended the campaign between our read and the transaction.
		if errors.Is(err, port.ErrInsufficientBudget) || errors.Is(err, port.ErrCampaignNotActive) {
			a.logger.Debug("click not billable", slog.Int64("ad_id", camp.ID), slog.Any("reason", err))
		} else {
			a.logger.Warn("click debit failed", slog.Int64("ad_id", camp.ID), slog.Any("error", err))
		}
		return port.ClickResult{RedirectURL: dest}
	}
	return port.ClickResult{RedirectURL: dest, Billed: true}
}

// redirectTarget resolves the advertised item's page, falling back to the
// catalog when the campaign's link is dangling.
func redirectTarget(c *domain.Campaign) string {
	switch {
	case c.ProductID != nil:
		return fmt.Sprintf("/product/%d", *c.ProductID)
	case c.ServiceID != nil:
		return fmt.Sprintf("/service/%d", *c.ServiceID)
	default:
		return CatalogPath
	}
}
