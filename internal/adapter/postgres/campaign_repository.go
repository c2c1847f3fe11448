package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vendora-ads/internal/core/domain"
	"vendora-ads/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, seller_id, name, product_id, service_id, total_budget, spent_amount, max_cpc, target_audience, start_at, end_at, status, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.SellerID,
		&c.Name,
		&c.ProductID,
		&c.ServiceID,
		&c.TotalBudget,
		&c.SpentAmount,
		&c.MaxCPC,
		&c.TargetAudience,
		&c.StartAt,
		&c.EndAt,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// GetCampaign returns a campaign by id, or (nil, nil) when absent.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts a campaign and fills in its generated id and
// timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
(seller_id, name, product_id, service_id, total_budget, spent_amount, max_cpc, target_audience, start_at, end_at, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,0,$6,$7,$8,$9,$10,now(),now())
RETURNING id, created_at, updated_at`,
		c.SellerID, c.Name, c.ProductID, c.ServiceID, c.TotalBudget, c.MaxCPC, c.TargetAudience, c.StartAt, c.EndAt, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateStatus persists a lifecycle transition.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// ListSellerCampaigns returns the seller's campaigns, newest first.
func (r *CampaignRepository) ListSellerCampaigns(ctx context.Context, sellerID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// HasRecentClick reports whether the ledger holds a click against adID since
// the given time matching the authenticated user or the visitor token. A
// NULL userID compares false, so anonymous lookups match on visitor_id only.
func (r *CampaignRepository) HasRecentClick(ctx context.Context, adID int64, userID *int64, visitorID string, since time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
    SELECT 1 FROM clicks
    WHERE ad_id = $1 AND created_at >= $2 AND (visitor_id = $3 OR user_id = $4))`,
		adID, since, visitorID, userID).Scan(&exists)
	return exists, err
}

// CreateClickAndDebit charges one click against the campaign budget and
// inserts the click record in a single transaction. The campaign row is
// locked for the duration so concurrent clicks serialize on the budget
// check; the campaign flips to ended the moment the budget is spent.
func (r *CampaignRepository) CreateClickAndDebit(ctx context.Context, click *domain.Click) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// lock campaign
	var c domain.Campaign
	err = tx.QueryRow(ctx,
		`SELECT id, total_budget, spent_amount, max_cpc, status FROM campaigns WHERE id = $1 FOR UPDATE`,
		click.AdID).Scan(&c.ID, &c.TotalBudget, &c.SpentAmount, &c.MaxCPC, &c.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotFound
		return err
	}
	if err != nil {
		return err
	}

	// re-check under the lock; the pre-transaction read may be stale
	if c.Status != domain.StatusActive {
		err = port.ErrCampaignNotActive
		return err
	}
	if c.SpentAmount+c.MaxCPC > c.TotalBudget {
		err = port.ErrInsufficientBudget
		return err
	}
	if err = c.Debit(); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET spent_amount = $1, status = $2, updated_at = now() WHERE id = $3`,
		c.SpentAmount, c.Status, c.ID)
	if err != nil {
		return err
	}

	click.Cost = c.MaxCPC
	click.CreatedAt = time.Now().UTC()
	err = tx.QueryRow(ctx,
		`INSERT INTO clicks (ad_id, user_id, visitor_id, cost, created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		click.AdID, click.UserID, click.VisitorID, click.Cost, click.CreatedAt).Scan(&click.ID)
	return err
}

// GetStats returns aggregated billable clicks and spend for a period.
func (r *CampaignRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND ad_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`SELECT COALESCE(count(*),0), COALESCE(sum(cost),0) FROM clicks WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Clicks, &resp.Cost); err != nil {
		return nil, err
	}
	return &resp, nil
}
