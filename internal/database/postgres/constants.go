package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when a balance would go negative despite the guard
	PgErrorCodeCheckViolation = "23514"
)

// Advisory lock namespace for per-owner equip serialisation
const (
	AdvisoryLockKeyMask = 0x7FFFFFFFFFFFFFFF
	AdvisoryLockPrefix  = "relic-owner:"
)

// Operation names used when wrapping store failures
const (
	OpBeginTx   = "begin transaction"
	OpCommit    = "commit transaction"
	OpRollback  = "rollback transaction"
	OpLockOwner = "lock owner"

	OpGetAccount    = "get account"
	OpCreditAccount = "credit account"
	OpDebitAccount  = "debit account"
	OpLockAccounts  = "lock accounts"
	OpClaimDaily    = "claim daily"
	OpTopAccounts   = "top accounts"
	OpGetProfile    = "get global profile"
	OpCreditGlobal  = "credit global"
	OpDebitGlobal   = "debit global"
	OpLockProfiles  = "lock global profiles"
	OpSaveGlobalXP  = "save global level"
	OpGetLevel      = "get level"
	OpSaveLevel     = "save level"
	OpCountAhead    = "count ahead"
	OpTopLevels     = "top levels"
	OpCreateRelic   = "create relic"
	OpGetRelic      = "get relic"
	OpListRelics    = "list relics"
	OpCountEquipped = "count equipped"
	OpSetEquipped   = "set equipped"
	OpTransferRelic = "transfer relic"
	OpGetListing    = "get listing"
	OpListActive    = "list active listings"
	OpCountActive   = "count active listings"
	OpCancelListing = "cancel listing"
	OpHasListing    = "check active listing"
	OpInsertListing = "insert listing"
	OpMarkSold      = "mark listing sold"
	OpInsertRound   = "insert casino round"
	OpInsertRun     = "insert dungeon run"
	OpGetConfig     = "get community config"
	OpSaveConfig    = "save community config"
	OpListConfigs   = "list community configs"
	OpLinearSalary  = "pay linear salary"
	OpTieredSalary  = "pay tiered salary"
	OpWeeklySalary  = "pay weekly salary"
	OpEncodeStats   = "encode relic stats"
	OpDecodeStats   = "decode relic stats"
	OpEncodeSalary  = "encode salary data"
	OpDecodeSalary  = "decode salary data"
	OpDecodeNumeric = "decode numeric"
)
