package inventory

// Error message formats
const (
	ErrMsgGetRelicFailed          = "failed to get relic: %w"
	ErrMsgListRelicsFailed        = "failed to list relics: %w"
	ErrMsgCountEquippedFailed     = "failed to count equipped relics: %w"
	ErrMsgSetEquippedFailed       = "failed to update equip state: %w"
	ErrMsgLockOwnerFailed         = "failed to lock owner: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgRelicEquipped   = "Relic equipped"
	LogMsgRelicUnequipped = "Relic unequipped"
)
