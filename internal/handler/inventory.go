package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhanushlnaik/mimisanv2/internal/inventory"
)

// InventoryHandler handles relic listing and equip slots
type InventoryHandler struct {
	service inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// HandleListRelics returns every relic a user owns, equipped first
func (h *InventoryHandler) HandleListRelics(w http.ResponseWriter, r *http.Request) {
	relics, err := h.service.ListRelics(r.Context(), chi.URLParam(r, ParamUserID))
	if err != nil {
		respondServiceError(w, r, OpListRelics, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: relics})
}

// HandleEquip puts a relic into a free slot
func (h *InventoryHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	relicID, ok := pathID(r, w, ParamRelicID)
	if !ok {
		return
	}

	relic, err := h.service.Equip(r.Context(), chi.URLParam(r, ParamUserID), relicID)
	if err != nil {
		respondServiceError(w, r, OpEquip, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: "Equipped " + relic.Name, Data: relic})
}

// HandleUnequip frees the slot of an equipped relic
func (h *InventoryHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	relicID, ok := pathID(r, w, ParamRelicID)
	if !ok {
		return
	}

	if err := h.service.Unequip(r.Context(), chi.URLParam(r, ParamUserID), relicID); err != nil {
		respondServiceError(w, r, OpUnequip, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Relic unequipped"})
}

// HandleStats returns the combined modifiers of the equipped relics
func (h *InventoryHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AggregateStats(r.Context(), chi.URLParam(r, ParamUserID))
	if err != nil {
		respondServiceError(w, r, OpStats, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: stats})
}
