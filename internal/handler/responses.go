package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
// Kind is the stable error category callers can switch on.
type ErrorResponse struct {
	Error   string     `json:"error"`
	Kind    string     `json:"kind,omitempty"`
	RetryAt *time.Time `json:"retry_at,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgServiceUnavailable, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError renders a service error by its kind and counts it under op
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logger.FromContext(r.Context())
	kind := domain.KindOf(err)
	status, message := mapServiceErrorToUserMessage(err)

	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Warn(LogMsgServiceRejected, "op", op, "kind", kind, "error", err)
	}
	metrics.RecordError(op, err)

	resp := ErrorResponse{Error: message, Kind: string(kind)}
	var claimErr *domain.DailyClaimError
	if errors.As(err, &claimErr) {
		next := claimErr.NextClaimAt.UTC()
		resp.RetryAt = &next
	}
	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and user-facing messages.
// Anything outside the taxonomy is a store failure and never leaks its text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	var featureErr *domain.FeatureDisabledError
	if errors.As(err, &featureErr) {
		return http.StatusForbidden, fmt.Sprintf(ErrMsgFeatureOffFmt, displayName(featureErr.Feature))
	}

	switch domain.KindOf(err) {
	case domain.KindInsufficientFunds:
		return http.StatusBadRequest, ErrMsgNotEnoughCoins
	case domain.KindNotFound:
		return http.StatusNotFound, notFoundMessage(err)
	case domain.KindAlreadyEquipped:
		return http.StatusConflict, ErrMsgAlreadyEquipped
	case domain.KindSlotLimitExceeded:
		return http.StatusConflict, ErrMsgSlotsFull
	case domain.KindAlreadySold:
		return http.StatusConflict, ErrMsgListingGone
	case domain.KindSelfTrade:
		return http.StatusBadRequest, ErrMsgSelfTrade
	case domain.KindFeatureDisabled:
		return http.StatusForbidden, ErrMsgFeatureOff
	case domain.KindInvalidAmount:
		return http.StatusBadRequest, ErrMsgPositiveAmount
	case domain.KindRelicEquipped:
		return http.StatusConflict, ErrMsgEquippedRelic
	case domain.KindAlreadyListed:
		return http.StatusConflict, ErrMsgAlreadyListed
	case domain.KindOnCooldown:
		return http.StatusTooManyRequests, ErrMsgOnCooldown
	case domain.KindAlreadyClaimed:
		return http.StatusConflict, ErrMsgDailyClaimed
	case domain.KindInvalidInput:
		return http.StatusBadRequest, ErrMsgInvalidChoice
	default:
		return http.StatusServiceUnavailable, ErrMsgServiceUnavailable
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRelicNotFound):
		return ErrMsgRelicNotFound
	case errors.Is(err, domain.ErrListingNotFound):
		return ErrMsgListingNotFound
	case errors.Is(err, domain.ErrAccountNotFound):
		return ErrMsgAccountNotFound
	default:
		return ErrMsgNotFound
	}
}
