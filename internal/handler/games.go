package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dhanushlnaik/mimisanv2/internal/casino"
	"github.com/dhanushlnaik/mimisanv2/internal/dungeon"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
)

// GamesHandler handles casino plays and dungeon runs
type GamesHandler struct {
	casino  casino.Service
	dungeon dungeon.Service
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(casinoSvc casino.Service, dungeonSvc dungeon.Service) *GamesHandler {
	return &GamesHandler{casino: casinoSvc, dungeon: dungeonSvc}
}

// PlayRequest is one casino play. Choice is the called side for coinflip.
type PlayRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Game   string `json:"game" validate:"required,casino_game"`
	Bet    int64  `json:"bet"`
	Choice string `json:"choice" validate:"max=16"`
}

// EnterDungeonRequest is one dungeon attempt
type EnterDungeonRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Rank   string `json:"rank" validate:"required,dungeon_rank"`
}

// HandlePlay settles one casino round
func (h *GamesHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Casino play"); err != nil {
		return
	}

	res, err := h.casino.Play(r.Context(), casino.PlayRequest{
		CommunityID: chi.URLParam(r, ParamCommunityID),
		UserID:      req.UserID,
		Game:        strings.ToLower(req.Game),
		Bet:         req.Bet,
		Choice:      req.Choice,
	})
	if err != nil {
		respondServiceError(w, r, OpCasinoPlay, err)
		return
	}

	metrics.RecordCasinoRound(res.Round, res.Relic != nil)

	game := displayName(res.Round.Game)
	msg := printer.Sprintf("%s: lost %s", game, coins(res.Round.Bet))
	if won, payout := res.Outcome.Result(); won {
		msg = printer.Sprintf("%s: won %s", game, coins(payout))
	}
	if res.Relic != nil {
		msg += ". Bonus relic: " + res.Relic.Name
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: msg, Data: res})
}

// HandleEnterDungeon settles one dungeon attempt
func (h *GamesHandler) HandleEnterDungeon(w http.ResponseWriter, r *http.Request) {
	var req EnterDungeonRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Enter dungeon"); err != nil {
		return
	}

	res, err := h.dungeon.Enter(r.Context(), chi.URLParam(r, ParamCommunityID), req.UserID, req.Rank)
	if err != nil {
		respondServiceError(w, r, OpDungeonEnter, err)
		return
	}

	outcome := res.Outcome
	metrics.RecordDungeonRun(res.Run, outcome.Relic != nil, res.XP != nil && res.XP.LeveledUp)

	msg := printer.Sprintf("Rank %s dungeon failed. Lost the %s entry fee", outcome.Rank, coins(outcome.EntryFee))
	if outcome.Won {
		msg = printer.Sprintf("Rank %s dungeon cleared! +%s, +%d XP", outcome.Rank, coins(outcome.Coins), outcome.XP)
		if outcome.Relic != nil {
			msg += ". Found " + outcome.Relic.Name
		}
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: msg, Data: res})
}
