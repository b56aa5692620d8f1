package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhanushlnaik/mimisanv2/internal/community"
	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// CommunityHandler reads and patches per-community configuration
type CommunityHandler struct {
	service community.Service
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(service community.Service) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// HandleGetConfig returns the config of a community, creating defaults on first access
func (h *CommunityHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Get(r.Context(), chi.URLParam(r, ParamCommunityID))
	if err != nil {
		respondServiceError(w, r, OpGetConfig, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: cfg})
}

// HandleUpdateConfig applies a partial update; omitted fields keep their value
func (h *CommunityHandler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var patch domain.CommunityConfigPatch
	if err := DecodeAndValidateRequest(r, w, &patch, "Update config"); err != nil {
		return
	}

	cfg, err := h.service.Update(r.Context(), chi.URLParam(r, ParamCommunityID), patch)
	if err != nil {
		respondServiceError(w, r, OpUpdateConfig, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: "Config updated", Data: cfg})
}
