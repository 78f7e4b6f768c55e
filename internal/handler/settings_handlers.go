package handler

import (
	"net/http"

	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/handler/dto"
)

// handleGetMaintenance returns the kill switch flag. Public and never gated:
// the site polls it on load to decide whether to render the notice page.
func (h *Handler) handleGetMaintenance(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.settingsRepo.MaintenanceMode(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.MaintenanceResponse{MaintenanceMode: enabled})
}

// handleGetSettings returns the site statistics row.
func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsRepo.Get(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToSettingsResponse(settings))
}

// handleUpdateSettings replaces the site settings row, including the kill switch.
// @Summary Update site settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.SettingsRequest true "Settings"
// @Success 200 {object} dto.SettingsResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	settings, err := h.settingsRepo.Update(r.Context(), &domain.SiteSettings{
		ActiveMembers:   req.ActiveMembers,
		TotalEvents:     req.TotalEvents,
		LivesImpacted:   req.LivesImpacted,
		AwardsWon:       req.AwardsWon,
		MaintenanceMode: req.MaintenanceMode,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToSettingsResponse(settings))
}

// handleGetDashboard returns entity counts for the admin landing page.
func (h *Handler) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.dashboardRepo.Counts(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToDashboardResponse(counts))
}
