package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the vendora-ads database: a handful of
// campaigns per seller in various lifecycle states, plus click history for
// the active ones.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	statuses := []string{"pending_approval", "active", "paused", "ended"}
	for i := 1; i <= 8; i++ {
		sellerID := int64((i-1)%4 + 1)
		name := fmt.Sprintf("Promo %d", i)
		start := time.Now().AddDate(0, 0, -7)
		end := time.Now().AddDate(0, 1, 0)
		totalBudget := int64(100000) // 1000.00 units
		targetAudience := int64(2000)
		maxCPC := totalBudget / targetAudience
		status := statuses[(i-1)%len(statuses)]
		spent := int64(0)
		if status == "ended" {
			spent = totalBudget
		} else if status == "active" {
			spent = maxCPC * int64(r.Intn(100))
		}

		// half the campaigns advertise a product, half a service
		var productID, serviceID *int64
		linked := int64(i)
		if i%2 == 0 {
			productID = &linked
		} else {
			serviceID = &linked
		}

		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, seller_id, name, product_id, service_id, total_budget, spent_amount,
     max_cpc, target_audience, start_at, end_at, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now(),now()) ON CONFLICT DO NOTHING`,
			i, sellerID, name, productID, serviceID, totalBudget, spent, maxCPC, targetAudience, start, end, status)
		if err != nil {
			return err
		}

		if status != "active" && status != "ended" {
			continue
		}
		// click history matching the spend
		for spent > 0 {
			var userID *int64
			if r.Intn(2) == 0 {
				uid := int64(r.Intn(50) + 1)
				userID = &uid
			}
			createdAt := time.Now().Add(-time.Duration(r.Intn(72)) * time.Hour)
			_, err = db.Exec(ctx, `INSERT INTO clicks
(ad_id, user_id, visitor_id, cost, created_at)
VALUES ($1,$2,$3,$4,$5)`,
				i, userID, uuid.NewString(), maxCPC, createdAt)
			if err != nil {
				return err
			}
			spent -= maxCPC
		}
	}
	return nil
}
