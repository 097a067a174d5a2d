package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadboard/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign and lead usecases, the session repository
// backing the auth gate, and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	campaigns port.CampaignUseCase
	leads     port.LeadUseCase
	sessions  port.SessionRepository
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Every data route
// sits behind the session middleware; identity is resolved once at the
// boundary and carried in the request context.
func NewHandler(campaigns port.CampaignUseCase, leads port.LeadUseCase, sessions port.SessionRepository, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, leads: leads, sessions: sessions, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleCampaignDetail)
		r.Get("/leads", h.handleListLeads)
		r.Get("/leads/{id}", h.handleLeadDetail)
		r.Get("/me", h.handleMe)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
