package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadboard/internal/core/port"
)

// handleListCampaigns serves the filtered, sorted, paginated campaign
// listing with the summary aggregate. All parameters are optional; junk
// values fall back to defaults rather than erroring.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.campaigns.ListCampaigns(r.Context(), parseCampaignQuery(r.URL.Query()))
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleCampaignDetail serves the campaign read-model. An unknown id is a
// 404, distinct from the generic server error.
func (h *Handler) handleCampaignDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.campaigns.CampaignDetail(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	if err != nil {
		h.logger.Error("campaign detail error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}
