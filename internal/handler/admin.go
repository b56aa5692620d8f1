package handler

import (
	"context"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhanushlnaik/mimisanv2/internal/community"
	"github.com/dhanushlnaik/mimisanv2/internal/ledger"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
	"github.com/dhanushlnaik/mimisanv2/internal/progression"
	"github.com/dhanushlnaik/mimisanv2/internal/salary"
	"github.com/dhanushlnaik/mimisanv2/internal/worker"
)

// Job label of a salary run for a single community
const jobCommunitySalary = "community_salary"

// AdminHandler exposes operator actions: manual salary runs and balance or XP adjustments
type AdminHandler struct {
	ledger      ledger.Service
	progression progression.Service
	salary      salary.Service
	communities community.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(ledgerSvc ledger.Service, progressionSvc progression.Service, salarySvc salary.Service, communitySvc community.Service) *AdminHandler {
	return &AdminHandler{
		ledger:      ledgerSvc,
		progression: progressionSvc,
		salary:      salarySvc,
		communities: communitySvc,
	}
}

// AdjustRequest credits, debits or grants XP to one member
type AdjustRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Amount int64  `json:"amount"`
}

// GlobalCreditRequest credits an arbitrary precision amount
type GlobalCreditRequest struct {
	Amount string `json:"amount" validate:"required,positive_bigint"`
}

// GlobalXPRequest grants global XP
type GlobalXPRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

// HandlePayDailySalary runs the daily community salary now
func (h *AdminHandler) HandlePayDailySalary(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Info(LogMsgSalaryTriggered, "job", worker.JobDailySalary)

	report, err := h.salary.PayDaily(r.Context())
	if err != nil {
		metrics.RecordSalaryRun(worker.JobDailySalary, 0, err)
		respondServiceError(w, r, OpSalaryDaily, err)
		return
	}
	metrics.RecordSalaryRun(worker.JobDailySalary, report.MembersPaid, nil)

	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Paid %d members across %d communities", report.MembersPaid, report.Communities),
		Data:    report,
	})
}

// HandlePayWeeklySalary runs the weekly global salary now
func (h *AdminHandler) HandlePayWeeklySalary(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Info(LogMsgSalaryTriggered, "job", worker.JobWeeklySalary)

	paid, err := h.salary.PayWeekly(r.Context())
	metrics.RecordSalaryRun(worker.JobWeeklySalary, paid, err)
	if err != nil {
		respondServiceError(w, r, OpSalaryWeekly, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Paid %d global profiles", paid),
		Data:    map[string]int64{"profiles_paid": paid},
	})
}

// HandlePayCommunitySalary runs the daily salary of one community
func (h *AdminHandler) HandlePayCommunitySalary(w http.ResponseWriter, r *http.Request) {
	communityID := chi.URLParam(r, ParamCommunityID)
	logger.FromContext(r.Context()).Info(LogMsgSalaryTriggered, "job", jobCommunitySalary, "community", communityID)

	cfg, err := h.communities.Get(r.Context(), communityID)
	if err != nil {
		respondServiceError(w, r, OpSalaryCommunity, err)
		return
	}

	paid, err := h.salary.PayCommunity(r.Context(), *cfg)
	metrics.RecordSalaryRun(jobCommunitySalary, paid, err)
	if err != nil {
		respondServiceError(w, r, OpSalaryCommunity, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Paid %d members", paid),
		Data:    map[string]int64{"members_paid": paid},
	})
}

// HandleListCommunities returns every stored community config
func (h *AdminHandler) HandleListCommunities(w http.ResponseWriter, r *http.Request) {
	cfgs, err := h.communities.List(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetConfig, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: cfgs})
}

// HandleCredit adds coins to a member's community balance
func (h *AdminHandler) HandleCredit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, OpAdminCredit, h.ledger.Credit)
}

// HandleDebit removes coins from a member's community balance
func (h *AdminHandler) HandleDebit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, OpAdminDebit, h.ledger.Debit)
}

type balanceAdjustment func(ctx context.Context, communityID, userID string, amount int64) (int64, error)

func (h *AdminHandler) adjust(w http.ResponseWriter, r *http.Request, op string, apply balanceAdjustment) {
	var req AdjustRequest
	if err := DecodeAndValidateRequest(r, w, &req, op); err != nil {
		return
	}

	communityID := chi.URLParam(r, ParamCommunityID)
	balance, err := apply(r.Context(), communityID, req.UserID, req.Amount)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgAdminAdjustment, "op", op, "community", communityID, "user", req.UserID, "amount", req.Amount)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Balance: %s", coins(balance)),
		Data:    map[string]int64{"balance": balance},
	})
}

// HandleGrantXP grants community XP without a cooldown
func (h *AdminHandler) HandleGrantXP(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant XP"); err != nil {
		return
	}

	res, err := h.progression.GrantXp(r.Context(), chi.URLParam(r, ParamCommunityID), req.UserID, req.Amount)
	if err != nil {
		respondServiceError(w, r, OpAdminGrantXP, err)
		return
	}
	if res.LeveledUp {
		metrics.LevelUps.Inc()
	}
	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Level %d (%d XP)", res.Level, res.XP),
		Data:    res,
	})
}

// HandleCreditGlobal adds coins to a user's global balance
func (h *AdminHandler) HandleCreditGlobal(w http.ResponseWriter, r *http.Request) {
	var req GlobalCreditRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Credit global"); err != nil {
		return
	}
	amount, _ := new(big.Int).SetString(req.Amount, 10)

	balance, err := h.ledger.CreditGlobal(r.Context(), chi.URLParam(r, ParamUserID), amount)
	if err != nil {
		respondServiceError(w, r, OpCreditGlobal, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{
		Message: "Global balance: " + bigCoins(balance),
		Data:    map[string]string{"balance": balance.String()},
	})
}

// HandleGrantGlobalXP grants global XP; a large grant may cross several levels
func (h *AdminHandler) HandleGrantGlobalXP(w http.ResponseWriter, r *http.Request) {
	var req GlobalXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant global XP"); err != nil {
		return
	}

	res, err := h.progression.AddGlobalXp(r.Context(), chi.URLParam(r, ParamUserID), req.Amount)
	if err != nil {
		respondServiceError(w, r, OpAdminGrantXP, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Global level %d", res.Level),
		Data:    res,
	})
}
