package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"insufficient funds", fmt.Errorf("debit: %w", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughCoins},
		{"relic not found", domain.ErrRelicNotFound, http.StatusNotFound, ErrMsgRelicNotFound},
		{"listing not found", fmt.Errorf("buy: %w", domain.ErrListingNotFound), http.StatusNotFound, ErrMsgListingNotFound},
		{"generic not found", domain.ErrNotFound, http.StatusNotFound, ErrMsgNotFound},
		{"already equipped", domain.ErrAlreadyEquipped, http.StatusConflict, ErrMsgAlreadyEquipped},
		{"slot limit", domain.ErrSlotLimitExceeded, http.StatusConflict, ErrMsgSlotsFull},
		{"already sold", domain.ErrAlreadySold, http.StatusConflict, ErrMsgListingGone},
		{"self trade", domain.ErrSelfTrade, http.StatusBadRequest, ErrMsgSelfTrade},
		{"feature disabled", &domain.FeatureDisabledError{Feature: domain.FeatureCasino}, http.StatusForbidden, "Casino is disabled in this community"},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest, ErrMsgPositiveAmount},
		{"relic equipped", domain.ErrRelicEquipped, http.StatusConflict, ErrMsgEquippedRelic},
		{"already listed", domain.ErrAlreadyListed, http.StatusConflict, ErrMsgAlreadyListed},
		{"cooldown", domain.ErrOnCooldown, http.StatusTooManyRequests, ErrMsgOnCooldown},
		{"daily claimed", &domain.DailyClaimError{NextClaimAt: time.Now()}, http.StatusConflict, ErrMsgDailyClaimed},
		{"invalid rank", domain.ErrInvalidRank, http.StatusBadRequest, ErrMsgInvalidChoice},
		{"store failure", fmt.Errorf("query: %w", domain.ErrStoreUnavailable), http.StatusServiceUnavailable, ErrMsgServiceUnavailable},
		{"unknown error", errors.New("pq: relation \"accounts\" does not exist"), http.StatusServiceUnavailable, ErrMsgServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError_DailyClaimCarriesRetryAt(t *testing.T) {
	next := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/daily", nil)

	respondServiceError(w, r, OpClaimDaily, &domain.DailyClaimError{NextClaimAt: next})

	require.Equal(t, http.StatusConflict, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, string(domain.KindAlreadyClaimed), resp.Kind)
	require.NotNil(t, resp.RetryAt)
	assert.True(t, next.Equal(*resp.RetryAt))
}

func TestRespondServiceError_StoreFailureHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/balance", nil)

	respondServiceError(w, r, OpGetBalance, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), `"kind":"store_unavailable"`)
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCoinFormatting(t *testing.T) {
	assert.Equal(t, "1 coin", coins(1))
	assert.Equal(t, "12,500 coins", coins(12500))
	assert.Equal(t, "0 coins", coins(0))

	huge, ok := new(big.Int).SetString("123456789012345678901234", 10)
	require.True(t, ok)
	assert.Equal(t, "123,456,789,012,345,678,901,234 coins", bigCoins(huge))
	assert.Equal(t, "1,000 coins", bigCoins(big.NewInt(1000)))

	assert.Equal(t, "Dungeons", displayName(domain.FeatureDungeons))
}
