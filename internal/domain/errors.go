package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInsufficientFunds   = "insufficient funds"
	ErrMsgNotFound            = "not found"
	ErrMsgAlreadyEquipped     = "relic already equipped"
	ErrMsgSlotLimitExceeded   = "equip slot limit exceeded"
	ErrMsgAlreadySold         = "listing is no longer active"
	ErrMsgSelfTrade           = "cannot trade with yourself"
	ErrMsgFeatureDisabled     = "feature is disabled"
	ErrMsgInvalidAmount       = "amount must be positive"
	ErrMsgStoreUnavailable    = "store unavailable"
	ErrMsgRelicEquipped       = "cannot list an equipped relic"
	ErrMsgAlreadyListed       = "relic already listed"
	ErrMsgOnCooldown          = "action on cooldown"
	ErrMsgDailyAlreadyClaimed = "daily reward already claimed"
	ErrMsgInvalidRank         = "invalid dungeon rank"
	ErrMsgInvalidGame         = "invalid casino game"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrNotFound            = errors.New(ErrMsgNotFound)
	ErrAlreadyEquipped     = errors.New(ErrMsgAlreadyEquipped)
	ErrSlotLimitExceeded   = errors.New(ErrMsgSlotLimitExceeded)
	ErrAlreadySold         = errors.New(ErrMsgAlreadySold)
	ErrSelfTrade           = errors.New(ErrMsgSelfTrade)
	ErrFeatureDisabled     = errors.New(ErrMsgFeatureDisabled)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)
	ErrStoreUnavailable    = errors.New(ErrMsgStoreUnavailable)
	ErrRelicEquipped       = errors.New(ErrMsgRelicEquipped)
	ErrAlreadyListed       = errors.New(ErrMsgAlreadyListed)
	ErrOnCooldown          = errors.New(ErrMsgOnCooldown)
	ErrDailyAlreadyClaimed = errors.New(ErrMsgDailyAlreadyClaimed)
	ErrInvalidRank         = errors.New(ErrMsgInvalidRank)
	ErrInvalidGame         = errors.New(ErrMsgInvalidGame)

	// NotFound variants; errors.Is(err, ErrNotFound) holds for all of them
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	ErrRelicNotFound   = fmt.Errorf("relic %w", ErrNotFound)
	ErrListingNotFound = fmt.Errorf("listing %w", ErrNotFound)
)

// DailyClaimError is returned when a daily claim is attempted inside the window
type DailyClaimError struct {
	NextClaimAt time.Time
}

func (e *DailyClaimError) Error() string {
	return fmt.Sprintf("%s: next claim at %s", ErrMsgDailyAlreadyClaimed, e.NextClaimAt.UTC().Format(time.RFC3339))
}

func (e *DailyClaimError) Unwrap() error {
	return ErrDailyAlreadyClaimed
}

// FeatureDisabledError names the community feature that is switched off
type FeatureDisabledError struct {
	Feature string
}

func (e *FeatureDisabledError) Error() string {
	return fmt.Sprintf("%s is disabled", e.Feature)
}

func (e *FeatureDisabledError) Unwrap() error {
	return ErrFeatureDisabled
}

// ErrorKind classifies an error for callers rendering user-facing messages
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindInsufficientFunds ErrorKind = "insufficient_funds"
	KindNotFound          ErrorKind = "not_found"
	KindAlreadyEquipped   ErrorKind = "already_equipped"
	KindSlotLimitExceeded ErrorKind = "slot_limit_exceeded"
	KindAlreadySold       ErrorKind = "already_sold"
	KindSelfTrade         ErrorKind = "self_trade"
	KindFeatureDisabled   ErrorKind = "feature_disabled"
	KindInvalidAmount     ErrorKind = "invalid_amount"
	KindRelicEquipped     ErrorKind = "relic_equipped"
	KindAlreadyListed     ErrorKind = "already_listed"
	KindOnCooldown        ErrorKind = "on_cooldown"
	KindAlreadyClaimed    ErrorKind = "already_claimed"
	KindInvalidInput      ErrorKind = "invalid_input"
	KindStoreUnavailable  ErrorKind = "store_unavailable"
)

var kindTable = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInsufficientFunds, KindInsufficientFunds},
	{ErrNotFound, KindNotFound},
	{ErrAlreadyEquipped, KindAlreadyEquipped},
	{ErrSlotLimitExceeded, KindSlotLimitExceeded},
	{ErrAlreadySold, KindAlreadySold},
	{ErrSelfTrade, KindSelfTrade},
	{ErrFeatureDisabled, KindFeatureDisabled},
	{ErrInvalidAmount, KindInvalidAmount},
	{ErrRelicEquipped, KindRelicEquipped},
	{ErrAlreadyListed, KindAlreadyListed},
	{ErrOnCooldown, KindOnCooldown},
	{ErrDailyAlreadyClaimed, KindAlreadyClaimed},
	{ErrInvalidRank, KindInvalidInput},
	{ErrInvalidGame, KindInvalidInput},
}

// KindOf maps err to its taxonomy kind.
// Anything outside the taxonomy is treated as a store failure.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, entry := range kindTable {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}
	return KindStoreUnavailable
}
