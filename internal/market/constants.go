package market

// Pagination bounds
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	// MaxPage keeps (page-1)*pageSize far from overflow; later pages are empty anyway
	MaxPage = 1_000_000
)

// Error message formats
const (
	ErrMsgGetConfigFailed         = "failed to get community config: %w"
	ErrMsgGetRelicFailed          = "failed to get relic: %w"
	ErrMsgCheckListingFailed      = "failed to check active listing: %w"
	ErrMsgInsertListingFailed     = "failed to insert listing: %w"
	ErrMsgGetListingFailed        = "failed to get listing: %w"
	ErrMsgMarkSoldFailed          = "failed to mark listing sold: %w"
	ErrMsgDebitBuyerFailed        = "failed to debit buyer: %w"
	ErrMsgCreditSellerFailed      = "failed to credit seller: %w"
	ErrMsgTransferRelicFailed     = "failed to transfer relic: %w"
	ErrMsgCancelListingFailed     = "failed to cancel listing: %w"
	ErrMsgListActiveFailed        = "failed to list active listings: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgListingCreated   = "Listing created"
	LogMsgListingSold      = "Listing sold"
	LogMsgListingCancelled = "Listing cancelled"
	LogMsgRelicMoved       = "Relic changed hands while listed"
)
