package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadboard/internal/core/port"
)

// handleListLeads serves the filtered, sorted, paginated lead listing.
func (h *Handler) handleListLeads(w http.ResponseWriter, r *http.Request) {
	list, err := h.leads.ListLeads(r.Context(), parseLeadQuery(r.URL.Query()))
	if err != nil {
		h.logger.Error("list leads error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleLeadDetail serves the lead read-model with decoded tags and the
// interaction history. An unknown id is a 404.
func (h *Handler) handleLeadDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.leads.LeadDetail(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, port.ErrLeadNotFound) {
		h.writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		h.logger.Error("lead detail error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}
