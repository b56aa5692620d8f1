package dungeon

// Error message formats
const (
	ErrMsgGetConfigFailed         = "failed to get community config: %w"
	ErrMsgListEquippedFailed      = "failed to list equipped relics: %w"
	ErrMsgDebitFeeFailed          = "failed to debit entry fee: %w"
	ErrMsgCreditRewardFailed      = "failed to credit dungeon reward: %w"
	ErrMsgGrantXPFailed           = "failed to grant dungeon xp: %w"
	ErrMsgCreateRelicFailed       = "failed to store dropped relic: %w"
	ErrMsgInsertRunFailed         = "failed to record dungeon run: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgDungeonCleared = "Dungeon cleared"
	LogMsgDungeonFailed  = "Dungeon failed"
)
