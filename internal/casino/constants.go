package casino

// Error message formats
const (
	ErrMsgGetConfigFailed         = "failed to get community config: %w"
	ErrMsgDebitBetFailed          = "failed to debit bet: %w"
	ErrMsgCreditPayoutFailed      = "failed to credit payout: %w"
	ErrMsgCreateRelicFailed       = "failed to store bonus relic: %w"
	ErrMsgInsertRoundFailed       = "failed to record casino round: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgRoundPlayed = "Casino round played"
	LogMsgBonusRelic  = "Casino bonus relic dropped"
)
