package domain

import "time"

// Economy constants
const (
	// DailyRewardAmount is granted by a successful daily claim
	DailyRewardAmount int64 = 100

	// DailyClaimWindow is the rolling window between two daily claims
	DailyClaimWindow = 24 * time.Hour

	// MaxEquippedRelics is the equip slot limit per user
	MaxEquippedRelics = 3
)

// Relic sources
const (
	SourceCasino  = "casino"
	SourceDungeon = "dungeon"
)

// Relic rarities
const (
	RarityCommon = "common"
)

// Feature names used in FeatureDisabled errors and metrics
const (
	FeatureCasino   = "casino"
	FeatureDungeons = "dungeons"
	FeatureMarket   = "market"
)
