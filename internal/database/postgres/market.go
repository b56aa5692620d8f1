package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// MarketRepository implements repository.Market for PostgreSQL
type MarketRepository struct {
	queries
	pool *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(pool *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{queries: queries{db: pool}, pool: pool}
}

func (r *MarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	return beginTx(ctx, r.pool)
}

func (r *MarketRepository) GetActiveListing(ctx context.Context, communityID string, listingID int64) (*domain.MarketListing, error) {
	const query = `
		SELECT id, seller_id, buyer_id, relic_id, price, community_id, status, listed_at, sold_at
		FROM market_listings
		WHERE id = $1 AND community_id = $2 AND status = 'active'
	`
	var l domain.MarketListing
	err := r.db.QueryRow(ctx, query, listingID, communityID).
		Scan(&l.ID, &l.SellerID, &l.BuyerID, &l.RelicID, &l.Price, &l.CommunityID, &l.Status, &l.ListedAt, &l.SoldAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, storeErr(OpGetListing, err)
	}
	return &l, nil
}

// ListActive returns one page of active listings, newest first, and the total active count
func (r *MarketRepository) ListActive(ctx context.Context, communityID string, limit, offset int) ([]domain.ListingView, int, error) {
	const countQuery = `SELECT COUNT(*) FROM market_listings WHERE community_id = $1 AND status = 'active'`
	const pageQuery = `
		SELECT l.id, l.seller_id, l.buyer_id, l.relic_id, l.price, l.community_id, l.status,
		       l.listed_at, l.sold_at, r.name, r.rarity
		FROM market_listings l
		JOIN relics r ON r.id = l.relic_id
		WHERE l.community_id = $1 AND l.status = 'active'
		ORDER BY l.listed_at DESC, l.id DESC
		LIMIT $2 OFFSET $3
	`

	var total int
	if err := r.db.QueryRow(ctx, countQuery, communityID).Scan(&total); err != nil {
		return nil, 0, storeErr(OpCountActive, err)
	}

	views := []domain.ListingView{}
	if offset >= total {
		return views, total, nil
	}

	rows, err := r.db.Query(ctx, pageQuery, communityID, limit, offset)
	if err != nil {
		return nil, 0, storeErr(OpListActive, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.ListingView
		if err := rows.Scan(&v.ID, &v.SellerID, &v.BuyerID, &v.RelicID, &v.Price, &v.CommunityID, &v.Status,
			&v.ListedAt, &v.SoldAt, &v.RelicName, &v.RelicRarity); err != nil {
			return nil, 0, storeErr(OpListActive, err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr(OpListActive, err)
	}
	return views, total, nil
}

func (r *MarketRepository) CancelListing(ctx context.Context, sellerID string, listingID int64) (bool, error) {
	const query = `
		UPDATE market_listings SET status = 'cancelled'
		WHERE id = $1 AND seller_id = $2 AND status = 'active'
	`
	tag, err := r.db.Exec(ctx, query, listingID, sellerID)
	if err != nil {
		return false, storeErr(OpCancelListing, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *pgTx) HasActiveListing(ctx context.Context, relicID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM market_listings WHERE relic_id = $1 AND status = 'active')`
	var exists bool
	if err := t.tx.QueryRow(ctx, query, relicID).Scan(&exists); err != nil {
		return false, storeErr(OpHasListing, err)
	}
	return exists, nil
}

// InsertListing relies on the partial unique index to reject a second active listing
func (t *pgTx) InsertListing(ctx context.Context, listing *domain.MarketListing) error {
	const query = `
		INSERT INTO market_listings (seller_id, relic_id, price, community_id, status, listed_at)
		VALUES ($1, $2, $3, $4, 'active', COALESCE($5, NOW()))
		RETURNING id, status, listed_at
	`
	var listed *time.Time
	if !listing.ListedAt.IsZero() {
		listed = &listing.ListedAt
	}
	err := t.tx.QueryRow(ctx, query, listing.SellerID, listing.RelicID, listing.Price, listing.CommunityID, listed).
		Scan(&listing.ID, &listing.Status, &listing.ListedAt)
	if isPgError(err, PgErrorCodeUniqueViolation) {
		return domain.ErrAlreadyListed
	}
	if err != nil {
		return storeErr(OpInsertListing, err)
	}
	return nil
}

// MarkListingSold is the serialization point of a purchase: only one buyer flips the row
func (t *pgTx) MarkListingSold(ctx context.Context, listingID int64, buyerID string, soldAt time.Time) (bool, error) {
	const query = `
		UPDATE market_listings SET status = 'sold', buyer_id = $2, sold_at = $3
		WHERE id = $1 AND status = 'active'
	`
	tag, err := t.tx.Exec(ctx, query, listingID, buyerID, soldAt)
	if err != nil {
		return false, storeErr(OpMarkSold, err)
	}
	return tag.RowsAffected() == 1, nil
}

var _ repository.Market = (*MarketRepository)(nil)
