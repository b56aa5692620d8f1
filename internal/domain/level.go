package domain

import (
	"math/big"
	"time"
)

// LevelRecord is a user's XP state inside one community.
// XP is always the remainder below the threshold of the current level.
type LevelRecord struct {
	CommunityID string     `json:"community_id"`
	UserID      string     `json:"user_id"`
	XP          int64      `json:"xp"`
	Level       int64      `json:"level"`
	LastXPAt    *time.Time `json:"last_xp_at,omitempty"`
}

// NewLevelRecord is the state of a member who has never earned XP
func NewLevelRecord(communityID, userID string) *LevelRecord {
	return &LevelRecord{CommunityID: communityID, UserID: userID, Level: 1}
}

// XPResult describes the outcome of a community XP grant
type XPResult struct {
	Granted   int64 `json:"granted"`
	LeveledUp bool  `json:"leveled_up"`
	Level     int64 `json:"level"`
	XP        int64 `json:"xp"`
}

// GlobalXPResult describes the outcome of a global XP grant
type GlobalXPResult struct {
	LeveledUp bool     `json:"leveled_up"`
	Level     int64    `json:"level"`
	XP        *big.Int `json:"xp"`
}

// ActivityResult combines the community and global grants of one chat or voice event.
// Community is nil when the community grant was on cooldown.
type ActivityResult struct {
	Community *XPResult       `json:"community,omitempty"`
	Global    *GlobalXPResult `json:"global"`
}
