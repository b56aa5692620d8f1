package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPathParam      = "Invalid %s"
	ErrMsgInvalidAmount         = "Amount must be a positive whole number"
)

// User-facing messages for service errors, keyed off domain.ErrorKind
const (
	ErrMsgNotEnoughCoins     = "Not enough coins"
	ErrMsgNotFound           = "Not found"
	ErrMsgRelicNotFound      = "Relic not found"
	ErrMsgListingNotFound    = "Listing not found"
	ErrMsgAccountNotFound    = "Account not found"
	ErrMsgAlreadyEquipped    = "That relic is already equipped"
	ErrMsgSlotsFull          = "All relic slots are in use. Unequip one first"
	ErrMsgListingGone        = "That listing is no longer available"
	ErrMsgSelfTrade          = "You can't trade with yourself"
	ErrMsgFeatureOff         = "That feature is disabled in this community"
	ErrMsgFeatureOffFmt      = "%s is disabled in this community"
	ErrMsgPositiveAmount     = "Amount must be positive"
	ErrMsgEquippedRelic      = "Unequip the relic before listing it"
	ErrMsgAlreadyListed      = "That relic is already listed"
	ErrMsgOnCooldown         = "Action is on cooldown. Try again later"
	ErrMsgDailyClaimed       = "Daily reward already claimed"
	ErrMsgInvalidChoice      = "Invalid game or rank"
	ErrMsgServiceUnavailable = "Server is temporarily unavailable. Please try again later."
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode %s request"
	LogMsgRequestDecoded      = "%s request decoded"
	LogMsgServiceError        = "Service call failed"
	LogMsgServiceRejected     = "Service rejected request"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgTransferCompleted   = "Transfer completed"
	LogMsgAdminAdjustment     = "Admin balance adjustment"
	LogMsgSalaryTriggered     = "Salary run triggered manually"
)

// Operation names used for error metrics
const (
	OpGetBalance      = "get_balance"
	OpTransfer        = "transfer"
	OpClaimDaily      = "claim_daily"
	OpLeaderboard     = "leaderboard"
	OpGetProfile      = "get_profile"
	OpTransferGlobal  = "transfer_global"
	OpCreditGlobal    = "credit_global"
	OpAdminCredit     = "admin_credit"
	OpAdminDebit      = "admin_debit"
	OpAdminGrantXP    = "admin_grant_xp"
	OpRecordMessage   = "record_message"
	OpGetRank         = "get_rank"
	OpListRelics      = "list_relics"
	OpEquip           = "equip"
	OpUnequip         = "unequip"
	OpStats           = "aggregate_stats"
	OpCreateListing   = "create_listing"
	OpBuyListing      = "buy_listing"
	OpCancelListing   = "cancel_listing"
	OpListMarket      = "list_market"
	OpCasinoPlay      = "casino_play"
	OpDungeonEnter    = "dungeon_enter"
	OpGetConfig       = "get_config"
	OpUpdateConfig    = "update_config"
	OpSalaryDaily     = "salary_daily"
	OpSalaryWeekly    = "salary_weekly"
	OpSalaryCommunity = "salary_community"
)

// Route parameter and query names
const (
	ParamCommunityID = "communityID"
	ParamUserID      = "userID"
	ParamRelicID     = "relicID"
	ParamListingID   = "listingID"
	QueryUserID      = "user_id"
	QueryLimit       = "limit"
	QueryPage        = "page"
	QueryPageSize    = "page_size"
)
