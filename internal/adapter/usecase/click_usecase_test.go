package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"vendora-ads/internal/core/domain"
	"vendora-ads/internal/core/port"
	"vendora-ads/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeCampaign(total, spent, cpc int64) *domain.Campaign {
	productID := int64(7)
	now := time.Now()
	return &domain.Campaign{
		ID:          1,
		ProductID:   &productID,
		TotalBudget: total,
		SpentAmount: spent,
		MaxCPC:      cpc,
		StartAt:     now.Add(-time.Hour),
		EndAt:       now.Add(time.Hour),
		Status:      domain.StatusActive,
	}
}

// TestClickBilled covers the happy path: active campaign, in window, budget
// available, no duplicate. The click is charged at MaxCPC and the visitor is
// sent to the product page.
func TestClickBilled(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := activeCampaign(1000, 0, 200)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)
	repo.EXPECT().
		HasRecentClick(mock.Anything, int64(1), mock.Anything, "visitor-1", mock.Anything).
		Return(false, nil)
	repo.EXPECT().
		CreateClickAndDebit(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Run(func(ctx context.Context, click *domain.Click) {
			if click.Cost != 200 {
				t.Errorf("expected click cost 200, got %d", click.Cost)
			}
			if click.VisitorID != "visitor-1" {
				t.Errorf("unexpected visitor id %q", click.VisitorID)
			}
		}).
		Return(nil)

	a := NewClickAccountant(repo, discardLogger(), 0)
	res := a.RecordClick(context.Background(), port.ClickRequest{AdID: 1, VisitorID: "visitor-1"})
	if !res.Billed {
		t.Fatal("expected click to be billed")
	}
	if res.RedirectURL != "/product/7" {
		t.Fatalf("unexpected redirect %q", res.RedirectURL)
	}
}

// TestClickInsufficientBudget: spent 900 of 1000 with CPC 200 leaves no room
// for a full click. Not billed, spend untouched, redirect still issued. The
// dedup lookup and the debit must never run.
func TestClickInsufficientBudget(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := activeCampaign(1000, 900, 200)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)

	a := NewClickAccountant(repo, discardLogger(), 0)
	res := a.RecordClick(context.Background(), port.ClickRequest{AdID: 1, VisitorID: "v"})
	if res.Billed {
		t.Fatal("expected click not to be billed")
	}
	if res.RedirectURL != "/product/7" {
		t.Fatalf("unexpected redirect %q", res.RedirectURL)
	}
	if camp.SpentAmount != 900 || camp.Status != domain.StatusActive {
		t.Fatalf("campaign mutated: spent=%d status=%s", camp.SpentAmount, camp.Status)
	}
}

// TestClickExhaustsBudget: spent 800 of 1000 with CPC 200 passes the budget
// check; the debit takes the spend to the ceiling and ends the campaign.
func TestClickExhaustsBudget(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := activeCampaign(1000, 800, 200)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)
	repo.EXPECT().
		HasRecentClick(mock.Anything, int64(1), mock.Anything, mock.Anything, mock.Anything).
		Return(false, nil)
	repo.EXPECT().
		CreateClickAndDebit(mock.Anything, mock.AnythingOfType("*domain.Click")).
		RunAndReturn(func(ctx context.Context, click *domain.Click) error {
			return camp.Debit()
		})

	a := NewClickAccountant(repo, discardLogger(), 0)
	res := a.RecordClick(context.Background(), port.ClickRequest{AdID: 1, VisitorID: "v"})
	if !res.Billed {
		t.Fatal("expected click to be billed")
	}
	if camp.SpentAmount != 1000 {
		t.Fatalf("expected spend 1000, got %d", camp.SpentAmount)
	}
	if camp.Status != domain.StatusEnded {
		t.Fatalf("expected ended, got %s", camp.Status)
	}
}

// TestClickDuplicateWithinWindow: a ledger hit within the dedup window
// suppresses billing but not the redirect.
func TestClickDuplicateWithinWindow(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := activeCampaign(1000, 0, 200)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)
	repo.EXPECT().
		HasRecentClick(mock.Anything, int64(1), mock.Anything, "visitor-1", mock.Anything).
		Return(true, nil)

	a := NewClickAccountant(repo, discardLogger(), 0)
	res := a.RecordClick(context.Background(), port.ClickRequest{AdID: 1, VisitorID: "visitor-1"})
	if res.Billed {
		t.Fatal("expected duplicate click not to be billed")
	}
	if res.RedirectURL != "/product/7" {
		t.Fatalf("unexpected redirect %q", res.RedirectURL)
	}
}

// TestClickOutsideScheduleWindow: a click after EndAt never bills regardless
// of status and budget.
func TestClickOutsideScheduleWindow(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := activeCampaign(1000, 0, 200)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)

	a := NewClickAccountant(repo, discardLogger(), 0)
	a.now = func() time.Time { return camp.EndAt.Add(time.Minute) }

	res := a.RecordClick(context.Background(), port.ClickRequest{AdID: 1, VisitorID: "v"})
	if res.Billed {
		t.Fatal("expected out-of-window click not to be billed")
	}
	if res.RedirectURL != "/product/7" {
		t.Fatalf("unexpected redirect %q", res.RedirectURL)
	}
}

// TestClickUnknownCampaign: no campaign means no writes and the generic
// catalog redirect.
func TestClickUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(99)).
		Return(nil, nil)

	a := NewClickAccountant(repo, discardLogger(), 0)
	res := a.RecordClick(context.Background(), port.ClickRequest{AdID: 99, VisitorID: "v"})
	if res.Billed {
		t.Fatal("expected no billing for unknown campaign")
	}
	if res.RedirectURL != CatalogPath {
		t.Fatalf("expected catalog redirect, got %q", res.RedirectURL)
	}
}

// TestClickDebitFailureSwallowed: a store failure during the debit is logged
// and swallowed; the visitor is still redirected to the item.
func TestClickDebitFailureSwallowed(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := activeCampaign(1000, 0, 200)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)
	repo.EXPECT().
		HasRecentClick(mock.Anything, int64(1), mock.Anything, mock.Anything, mock.Anything).
		Return(false, nil)
	repo.EXPECT().
		CreateClickAndDebit(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Return(errors.New("connection reset"))

	a := NewClickAccountant(repo, discardLogger(), 0)
	res := a.RecordClick(context.Background(), port.ClickRequest{AdID: 1, VisitorID: "v"})
	if res.Billed {
		t.Fatal("expected failed debit not to be reported as billed")
	}
	if res.RedirectURL != "/product/7" {
		t.Fatalf("unexpected redirect %q", res.RedirectURL)
	}
}

// TestClickRedirectTargets: a campaign linked to a service redirects to the
// service page; a campaign with a dangling link falls back to the catalog.
func TestClickRedirectTargets(t *testing.T) {
	serviceID := int64(3)
	camp := activeCampaign(1000, 1000, 200) // exhausted, no billing path
	camp.ProductID = nil
	camp.ServiceID = &serviceID

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)

	a := NewClickAccountant(repo, discardLogger(), 0)
	res := a.RecordClick(context.Background(), port.ClickRequest{AdID: 1, VisitorID: "v"})
	if res.RedirectURL != "/service/3" {
		t.Fatalf("unexpected redirect %q", res.RedirectURL)
	}

	camp.ServiceID = nil
	res = a.RecordClick(context.Background(), port.ClickRequest{AdID: 1, VisitorID: "v"})
	if res.RedirectURL != CatalogPath {
		t.Fatalf("expected catalog fallback, got %q", res.RedirectURL)
	}
}

// TestConcurrentBudgetRace ensures that with budget for exactly one more
// click, concurrent clicks from different visitors bill exactly once and
// spend never passes the ceiling. The mock serializes the debit the way the
// store's transaction does.
func TestConcurrentBudgetRace(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	var (
		mu    sync.Mutex
		total = int64(1000)
		spent = int64(800)
		cpc   = int64(200)
	)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		RunAndReturn(func(ctx context.Context, id int64) (*domain.Campaign, error) {
			mu.Lock()
			defer mu.Unlock()
			c := activeCampaign(total, spent, cpc)
			return c, nil
		})
	repo.EXPECT().
		HasRecentClick(mock.Anything, int64(1), mock.Anything, mock.Anything, mock.Anything).
		Return(false, nil)
	repo.EXPECT().
		CreateClickAndDebit(mock.Anything, mock.AnythingOfType("*domain.Click")).
		RunAndReturn(func(ctx context.Context, click *domain.Click) error {
			mu.Lock()
			defer mu.Unlock()
			if spent+cpc > total {
				return port.ErrInsufficientBudget
			}
			spent += cpc
			return nil
		})

	a := NewClickAccountant(repo, discardLogger(), 0)

	var (
		wg     sync.WaitGroup
		billed int64
		bm     sync.Mutex
	)
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			res := a.RecordClick(context.Background(), port.ClickRequest{
				AdID:      1,
				VisitorID: fmt.Sprintf("visitor-%d", i),
			})
			if res.Billed {
				bm.Lock()
				billed++
				bm.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if billed != 1 {
		t.Fatalf("expected exactly one billed click, got %d", billed)
	}
	if spent > total {
		t.Fatalf("spend %d exceeds budget %d", spent, total)
	}
}
