package domain

import (
	"math/big"
	"time"
)

// Account is a user's currency balance inside one community
type Account struct {
	CommunityID    string     `json:"community_id"`
	UserID         string     `json:"user_id"`
	Balance        int64      `json:"balance"`
	DailyClaimedAt *time.Time `json:"daily_claimed_at,omitempty"`
}

// GlobalProfile is a user's cross-community progression and wealth.
// Balances are arbitrary precision because weekly salary compounds without bound.
type GlobalProfile struct {
	UserID        string     `json:"user_id"`
	GlobalXP      *big.Int   `json:"global_xp"`
	GlobalLevel   int64      `json:"global_level"`
	Reputation    int64      `json:"reputation"`
	Balance       *big.Int   `json:"balance"`
	TotalEarnings *big.Int   `json:"total_earnings"`
	LastDailyAt   *time.Time `json:"last_daily_at,omitempty"`
	LastWeeklyAt  *time.Time `json:"last_weekly_at,omitempty"`
}

// NewGlobalProfile returns the zero-state profile created on first access
func NewGlobalProfile(userID string) *GlobalProfile {
	return &GlobalProfile{
		UserID:        userID,
		GlobalXP:      new(big.Int),
		GlobalLevel:   1,
		Balance:       new(big.Int),
		TotalEarnings: new(big.Int),
	}
}

// Clone returns a deep copy so callers can't alias the big.Int fields
func (p *GlobalProfile) Clone() *GlobalProfile {
	c := *p
	c.GlobalXP = new(big.Int).Set(p.GlobalXP)
	c.Balance = new(big.Int).Set(p.Balance)
	c.TotalEarnings = new(big.Int).Set(p.TotalEarnings)
	return &c
}

// DailyClaim is the result of a successful daily claim
type DailyClaim struct {
	Amount      int64     `json:"amount"`
	Balance     int64     `json:"balance"`
	NextClaimAt time.Time `json:"next_claim_at"`
}
