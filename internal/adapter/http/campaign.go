package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vendora-ads/internal/core/domain"
	"vendora-ads/internal/core/port"
)

// createCampaignRequest is the JSON body for campaign creation. Monetary
// amounts are integer minor units.
type createCampaignRequest struct {
	SellerID       int64     `json:"seller_id"`
	Name           string    `json:"name"`
	ProductID      *int64    `json:"product_id,omitempty"`
	ServiceID      *int64    `json:"service_id,omitempty"`
	TotalBudget    int64     `json:"total_budget"`
	TargetAudience int64     `json:"target_audience"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
}

type campaignResponse struct {
	ID             int64     `json:"id"`
	SellerID       int64     `json:"seller_id"`
	Name           string    `json:"name"`
	ProductID      *int64    `json:"product_id,omitempty"`
	ServiceID      *int64    `json:"service_id,omitempty"`
	TotalBudget    int64     `json:"total_budget"`
	SpentAmount    int64     `json:"spent_amount"`
	MaxCPC         int64     `json:"max_cpc"`
	TargetAudience int64     `json:"target_audience"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID,
		SellerID:       c.SellerID,
		Name:           c.Name,
		ProductID:      c.ProductID,
		ServiceID:      c.ServiceID,
		TotalBudget:    c.TotalBudget,
		SpentAmount:    c.SpentAmount,
		MaxCPC:         c.MaxCPC,
		TargetAudience: c.TargetAudience,
		StartAt:        c.StartAt,
		EndAt:          c.EndAt,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// handleCreateCampaign registers a new campaign in pending_approval.
// Validation failures produce HTTP 400; internal errors HTTP 500.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.Create(r.Context(), port.CreateCampaignReq{
		SellerID:       body.SellerID,
		Name:           body.Name,
		ProductID:      body.ProductID,
		ServiceID:      body.ServiceID,
		TotalBudget:    body.TotalBudget,
		TargetAudience: body.TargetAudience,
		StartAt:        body.StartAt,
		EndAt:          body.EndAt,
	})
	if err != nil {
		h.writeCampaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleGetCampaign returns a single campaign by id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeCampaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleListCampaigns lists a seller's campaigns, newest first. The
// seller_id query parameter is required.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	sellerID, err := strconv.ParseInt(r.URL.Query().Get("seller_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid seller_id", http.StatusBadRequest)
		return
	}
	list, err := h.campaigns.ListBySeller(r.Context(), sellerID)
	if err != nil {
		h.writeCampaignError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for i := range list {
		out = append(out, toCampaignResponse(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.Approve)
}

func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.Pause)
}

func (h *Handler) handleResumeCampaign(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.Resume)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (*domain.Campaign, error)) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := op(r.Context(), id)
	if err != nil {
		h.writeCampaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeCampaignError maps business errors onto HTTP statuses. Unknown
// errors are logged and reported as a generic 500.
func (h *Handler) writeCampaignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidCampaign):
		http.Error(w, "invalid campaign parameters", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, "invalid status transition", http.StatusConflict)
	default:
		h.logger.Error("campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
