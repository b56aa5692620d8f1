package progression

// Chat XP draw, inclusive range
const (
	ChatXPMin = 15
	ChatXPMax = 25
)

// VoiceXPPerMinute is the base XP of one voice minute before the community rate
const VoiceXPPerMinute = 10

// Leaderboard bounds
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Error message formats
const (
	ErrMsgGetConfigFailed         = "failed to get community config: %w"
	ErrMsgGetLevelFailed          = "failed to get level: %w"
	ErrMsgSaveLevelFailed         = "failed to save level: %w"
	ErrMsgGetProfileFailed        = "failed to get global profile: %w"
	ErrMsgSaveProfileFailed       = "failed to save global profile: %w"
	ErrMsgCountRankFailed         = "failed to count rank: %w"
	ErrMsgLeaderboardFailed       = "failed to load leaderboard: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgLevelUp        = "User leveled up"
	LogMsgGlobalLevelUp  = "User leveled up globally"
	LogMsgGlobalXPFailed = "Failed to add global XP"
)
