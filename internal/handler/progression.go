package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
	"github.com/dhanushlnaik/mimisanv2/internal/progression"
)

// ProgressionHandler handles chat activity, ranks and level leaderboards
type ProgressionHandler struct {
	service progression.Service
}

// NewProgressionHandler creates a new progression handler
func NewProgressionHandler(service progression.Service) *ProgressionHandler {
	return &ProgressionHandler{service: service}
}

// MessageRequest reports one chat message
type MessageRequest struct {
	UserID    string `json:"user_id" validate:"required,max=64"`
	ChannelID string `json:"channel_id" validate:"max=64"`
}

// HandleRecordMessage grants chat XP for one message.
// A message inside the cooldown or in a filtered channel succeeds with no community grant.
func (h *ProgressionHandler) HandleRecordMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record message"); err != nil {
		return
	}

	res, err := h.service.RecordMessage(r.Context(), chi.URLParam(r, ParamCommunityID), req.ChannelID, req.UserID)
	if err != nil {
		respondServiceError(w, r, OpRecordMessage, err)
		return
	}
	if res.Community != nil && res.Community.LeveledUp {
		metrics.LevelUps.Inc()
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: activityMessage(res), Data: res})
}

// HandleGetRank returns a member's position, level and progress
func (h *ProgressionHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, QueryUserID)
	if !ok {
		return
	}

	rank, err := h.service.GetRank(r.Context(), chi.URLParam(r, ParamCommunityID), userID)
	if err != nil {
		respondServiceError(w, r, OpGetRank, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Rank #%d, level %d (%d/%d XP)", rank.Rank, rank.Level, rank.XP, rank.Next),
		Data:    rank,
	})
}

// HandleLevelLeaderboard returns the highest members of a community
func (h *ProgressionHandler) HandleLevelLeaderboard(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Leaderboard(r.Context(), chi.URLParam(r, ParamCommunityID), getQueryInt(r, QueryLimit, 0))
	if err != nil {
		respondServiceError(w, r, OpLeaderboard, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: records})
}

// activityMessage announces level-ups; a plain grant needs no message
func activityMessage(res *domain.ActivityResult) string {
	switch {
	case res.Community != nil && res.Community.LeveledUp:
		return printer.Sprintf("Level up! You reached level %d", res.Community.Level)
	case res.Global != nil && res.Global.LeveledUp:
		return printer.Sprintf("Global level up! You reached level %d", res.Global.Level)
	default:
		return ""
	}
}
