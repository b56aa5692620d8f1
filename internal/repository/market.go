package repository

import (
	"context"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// MarketTx defines the interface for marketplace transactions
type MarketTx interface {
	Tx
	AccountOps

	GetRelicForUpdate(ctx context.Context, relicID int64) (*domain.Relic, error)
	HasActiveListing(ctx context.Context, relicID int64) (bool, error)

	// InsertListing fails with domain.ErrAlreadyListed when the relic already has an active listing
	InsertListing(ctx context.Context, listing *domain.MarketListing) error

	// MarkListingSold flips status active -> sold and reports whether exactly one row changed
	MarkListingSold(ctx context.Context, listingID int64, buyerID string, soldAt time.Time) (bool, error)

	// TransferRelic moves ownership and clears the equipped flag
	TransferRelic(ctx context.Context, relicID int64, fromID, toID string) (bool, error)
}

// Market defines the interface for listing persistence
type Market interface {
	GetActiveListing(ctx context.Context, communityID string, listingID int64) (*domain.MarketListing, error)
	ListActive(ctx context.Context, communityID string, limit, offset int) ([]domain.ListingView, int, error)

	// CancelListing flips status active -> cancelled for the given seller
	CancelListing(ctx context.Context, sellerID string, listingID int64) (bool, error)

	BeginTx(ctx context.Context) (MarketTx, error)
}
