package ledger

// Error message formats
const (
	ErrMsgGetAccountFailed        = "failed to get account: %w"
	ErrMsgCreditFailed            = "failed to credit account: %w"
	ErrMsgDebitFailed             = "failed to debit account: %w"
	ErrMsgClaimDailyFailed        = "failed to claim daily reward: %w"
	ErrMsgGetProfileFailed        = "failed to get global profile: %w"
	ErrMsgCreditGlobalFailed      = "failed to credit global balance: %w"
	ErrMsgDebitGlobalFailed       = "failed to debit global balance: %w"
	ErrMsgLockFailed              = "failed to lock accounts: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgLeaderboardFailed       = "failed to load leaderboard: %w"
)

// Log messages
const (
	LogMsgDailyClaimed      = "Daily reward claimed"
	LogMsgDailyRejected     = "Daily reward rejected, window still open"
	LogMsgTransferred       = "Currency transferred"
	LogMsgGlobalTransferred = "Global currency transferred"
)

// Leaderboard bounds
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)
