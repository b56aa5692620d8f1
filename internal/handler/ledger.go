package handler

import (
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhanushlnaik/mimisanv2/internal/ledger"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
)

// LedgerHandler handles balances, transfers and daily claims
type LedgerHandler struct {
	service ledger.Service
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// TransferRequest moves coins between two members of a community.
// Amount is checked by the ledger so a non-positive value surfaces as invalid_amount.
type TransferRequest struct {
	FromUserID string `json:"from_user_id" validate:"required,max=64"`
	ToUserID   string `json:"to_user_id" validate:"required,max=64"`
	Amount     int64  `json:"amount"`
}

// GlobalTransferRequest moves arbitrary precision coins between global profiles
type GlobalTransferRequest struct {
	FromUserID string `json:"from_user_id" validate:"required,max=64"`
	ToUserID   string `json:"to_user_id" validate:"required,max=64"`
	Amount     string `json:"amount" validate:"required"`
}

// UserRequest identifies the acting member
type UserRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// HandleGetBalance returns a member's community balance
func (h *LedgerHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, QueryUserID)
	if !ok {
		return
	}

	acct, err := h.service.GetBalance(r.Context(), chi.URLParam(r, ParamCommunityID), userID)
	if err != nil {
		respondServiceError(w, r, OpGetBalance, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Balance: %s", coins(acct.Balance)),
		Data:    acct,
	})
}

// HandleTransfer moves coins from one member to another
func (h *LedgerHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Transfer"); err != nil {
		return
	}

	communityID := chi.URLParam(r, ParamCommunityID)
	result, err := h.service.Transfer(r.Context(), communityID, req.FromUserID, req.ToUserID, req.Amount)
	if err != nil {
		respondServiceError(w, r, OpTransfer, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgTransferCompleted, "community", communityID, "from", req.FromUserID, "to", req.ToUserID, "amount", req.Amount)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Sent %s", coins(req.Amount)),
		Data:    result,
	})
}

// HandleClaimDaily grants the daily reward once per window
func (h *LedgerHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim daily"); err != nil {
		return
	}

	claim, err := h.service.ClaimDaily(r.Context(), chi.URLParam(r, ParamCommunityID), req.UserID)
	if err != nil {
		respondServiceError(w, r, OpClaimDaily, err)
		return
	}
	metrics.DailyClaims.Inc()

	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Claimed %s. Balance: %s", coins(claim.Amount), coins(claim.Balance)),
		Data:    claim,
	})
}

// HandleCoinLeaderboard returns the richest members of a community
func (h *LedgerHandler) HandleCoinLeaderboard(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.Leaderboard(r.Context(), chi.URLParam(r, ParamCommunityID), getQueryInt(r, QueryLimit, 0))
	if err != nil {
		respondServiceError(w, r, OpLeaderboard, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: accounts})
}

// HandleGetProfile returns a user's global profile
func (h *LedgerHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetGlobalProfile(r.Context(), chi.URLParam(r, ParamUserID))
	if err != nil {
		respondServiceError(w, r, OpGetProfile, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Level %d, %s", profile.GlobalLevel, bigCoins(profile.Balance)),
		Data:    profile,
	})
}

// HandleGlobalTransfer moves coins between global balances
func (h *LedgerHandler) HandleGlobalTransfer(w http.ResponseWriter, r *http.Request) {
	var req GlobalTransferRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Global transfer"); err != nil {
		return
	}

	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{"amount": ErrMsgInvalidAmount},
		})
		return
	}

	if err := h.service.TransferGlobal(r.Context(), req.FromUserID, req.ToUserID, amount); err != nil {
		respondServiceError(w, r, OpTransferGlobal, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Sent " + bigCoins(amount)})
}
