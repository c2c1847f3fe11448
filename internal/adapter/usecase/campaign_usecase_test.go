package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"vendora-ads/internal/core/domain"
	"vendora-ads/internal/core/port"
	"vendora-ads/internal/core/port/mocks"
)

func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) {
			c.ID = 42
		}).
		Return(nil)

	m := NewCampaignManager(repo)
	productID := int64(7)
	start := time.Now()
	c, err := m.Create(context.Background(), port.CreateCampaignReq{
		SellerID:       3,
		Name:           "Spring sale",
		ProductID:      &productID,
		TotalBudget:    1000,
		TargetAudience: 5,
		StartAt:        start,
		EndAt:          start.AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID != 42 {
		t.Fatalf("expected generated id, got %d", c.ID)
	}
	if c.MaxCPC != 200 {
		t.Fatalf("expected max CPC 200, got %d", c.MaxCPC)
	}
	if c.Status != domain.StatusPendingApproval {
		t.Fatalf("expected pending_approval, got %s", c.Status)
	}
}

func TestCreateCampaignRejectsInvalidInput(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	m := NewCampaignManager(repo)
	// both links set; the repository must never be touched
	productID, serviceID := int64(1), int64(2)
	_, err := m.Create(context.Background(), port.CreateCampaignReq{
		SellerID:       3,
		Name:           "x",
		ProductID:      &productID,
		ServiceID:      &serviceID,
		TotalBudget:    1000,
		TargetAudience: 5,
		StartAt:        time.Now(),
		EndAt:          time.Now().AddDate(0, 1, 0),
	})
	if !errors.Is(err, domain.ErrInvalidCampaign) {
		t.Fatalf("expected ErrInvalidCampaign, got %v", err)
	}
}

func TestApproveCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := &domain.Campaign{ID: 1, Status: domain.StatusPendingApproval}

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)
	repo.EXPECT().
		UpdateStatus(mock.Anything, int64(1), domain.StatusActive).
		Return(nil)

	m := NewCampaignManager(repo)
	c, err := m.Approve(context.Background(), 1)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if c.Status != domain.StatusActive {
		t.Fatalf("expected active, got %s", c.Status)
	}
}

func TestApproveActiveCampaignFails(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := &domain.Campaign{ID: 1, Status: domain.StatusActive}

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(camp, nil)

	m := NewCampaignManager(repo)
	if _, err := m.Approve(context.Background(), 1); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestGetCampaignNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(9)).
		Return(nil, nil)

	m := NewCampaignManager(repo)
	if _, err := m.Get(context.Background(), 9); !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}
