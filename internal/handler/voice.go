package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhanushlnaik/mimisanv2/internal/voice"
)

// VoiceSessions is the session surface of the voice tracker
type VoiceSessions interface {
	Join(communityID, userID string)
	Leave(communityID, userID string) *voice.Session
	Active(communityID string) []voice.Session
}

// VoiceHandler forwards voice join and leave events to the tracker
type VoiceHandler struct {
	sessions VoiceSessions
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(sessions VoiceSessions) *VoiceHandler {
	return &VoiceHandler{sessions: sessions}
}

// HandleJoin starts tracking a member in voice
func (h *VoiceHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Voice join"); err != nil {
		return
	}
	h.sessions.Join(chi.URLParam(r, ParamCommunityID), req.UserID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Voice session started"})
}

// HandleLeave stops tracking a member and returns the finished session
func (h *VoiceHandler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Voice leave"); err != nil {
		return
	}

	session := h.sessions.Leave(chi.URLParam(r, ParamCommunityID), req.UserID)
	if session == nil {
		respondError(w, http.StatusNotFound, "No active voice session")
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Voice session ended after %d minutes", session.Minutes),
		Data:    session,
	})
}

// HandleActive lists the members currently tracked in a community
func (h *VoiceHandler) HandleActive(w http.ResponseWriter, r *http.Request) {
	sessions := h.sessions.Active(chi.URLParam(r, ParamCommunityID))
	if sessions == nil {
		sessions = []voice.Session{}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: sessions})
}
