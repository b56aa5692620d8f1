package domain

import "time"

// Outcome labels stored in audit records
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// CasinoRound is a write-once audit record of one casino play
type CasinoRound struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	CommunityID string    `json:"community_id"`
	Game        string    `json:"game"`
	Bet         int64     `json:"bet"`
	Outcome     string    `json:"outcome"`
	Payout      int64     `json:"payout"`
	PlayedAt    time.Time `json:"played_at"`
}

// DungeonRun is a write-once audit record of one dungeon attempt
type DungeonRun struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	CommunityID string    `json:"community_id"`
	Rank        string    `json:"rank"`
	EntryFee    int64     `json:"entry_fee"`
	Outcome     string    `json:"outcome"`
	Payout      int64     `json:"payout"`
	CompletedAt time.Time `json:"completed_at"`
}
