package salary

// Weekly global salary: round(global_level^WeeklyExponent * WeeklyConstant)
const (
	WeeklyExponent = 1.15
	WeeklyConstant = 100
)

// TierKeySeparator splits a tier key such as "5-10"
const TierKeySeparator = "-"

// Error message formats
const (
	ErrMsgListConfigsFailed = "failed to list community configs: %w"
	ErrMsgPayLinearFailed   = "failed to pay linear salary: %w"
	ErrMsgPayTieredFailed   = "failed to pay tiered salary: %w"
	ErrMsgPayWeeklyFailed   = "failed to pay weekly salary: %w"
)

// Log messages
const (
	LogMsgDailyStarted      = "Daily salary run started"
	LogMsgDailyFinished     = "Daily salary run finished"
	LogMsgCommunityPaid     = "Community salary paid"
	LogMsgCommunityFailed   = "Community salary failed"
	LogMsgInvalidTier       = "Skipping invalid salary tier"
	LogMsgNoTiers           = "Tiered community has no valid tiers"
	LogMsgWeeklyFinished    = "Weekly salary run finished"
	LogMsgUnknownSalaryMode = "Unknown salary mode"
)
