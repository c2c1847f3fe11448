package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vendora-ads/internal/core/port"
)

// VisitorCookie describes the durable anonymous-visitor cookie attached to
// click-through responses.
type VisitorCookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the click accountant and campaign service to execute
// business logic and a logger for structured logging. Routes are registered
// on a chi.Router for convenient method handling.
type Handler struct {
	clicks    port.ClickAccountant
	campaigns port.CampaignService
	cookie    VisitorCookie
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each endpoint on a new chi.Router.
func NewHandler(clicks port.ClickAccountant, campaigns port.CampaignService, cookie VisitorCookie, logger *slog.Logger) *Handler {
	h := &Handler{clicks: clicks, campaigns: campaigns, cookie: cookie, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ad/click", h.handleAdClick)
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Post("/{id}/approve", h.handleApproveCampaign)
			r.Post("/{id}/pause", h.handlePauseCampaign)
			r.Post("/{id}/resume", h.handleResumeCampaign)
		})
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
