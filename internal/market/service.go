package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// ConfigProvider resolves the community configuration
type ConfigProvider interface {
	Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error)
}

// Service defines the interface for the relic marketplace
type Service interface {
	CreateListing(ctx context.Context, sellerID, communityID string, relicID, price int64) (*domain.MarketListing, error)
	BuyListing(ctx context.Context, buyerID, communityID string, listingID int64) (*domain.Purchase, error)
	CancelListing(ctx context.Context, sellerID string, listingID int64) error
	ListActive(ctx context.Context, communityID string, page, pageSize int) (*domain.ListingPage, error)
}

type service struct {
	repo    repository.Market
	configs ConfigProvider
	now     func() time.Time
}

// NewService creates a new market service
func NewService(repo repository.Market, configs ConfigProvider) Service {
	return &service{repo: repo, configs: configs, now: time.Now}
}

func (s *service) requireMarket(ctx context.Context, communityID string) error {
	cfg, err := s.configs.Get(ctx, communityID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetConfigFailed, err)
	}
	return cfg.RequireFeature(domain.FeatureMarket)
}

func (s *service) CreateListing(ctx context.Context, sellerID, communityID string, relicID, price int64) (*domain.MarketListing, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: price %d", domain.ErrInvalidAmount, price)
	}
	if err := s.requireMarket(ctx, communityID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	relic, err := tx.GetRelicForUpdate(ctx, relicID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRelicNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetRelicFailed, err)
	}
	if relic.OwnerID != sellerID {
		return nil, domain.ErrRelicNotFound
	}
	if relic.Equipped {
		return nil, domain.ErrRelicEquipped
	}

	listed, err := tx.HasActiveListing(ctx, relicID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckListingFailed, err)
	}
	if listed {
		return nil, domain.ErrAlreadyListed
	}

	listing := &domain.MarketListing{
		SellerID:    sellerID,
		RelicID:     relicID,
		Price:       price,
		CommunityID: communityID,
		Status:      domain.ListingActive,
		ListedAt:    s.now().UTC(),
	}
	if err := tx.InsertListing(ctx, listing); err != nil {
		if errors.Is(err, domain.ErrAlreadyListed) {
			return nil, domain.ErrAlreadyListed
		}
		return nil, fmt.Errorf(ErrMsgInsertListingFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgListingCreated, "listing", listing.ID, "seller", sellerID, "relic", relicID, "price", price)
	return listing, nil
}

// BuyListing settles a sale in one transaction. The Active -> Sold flip is the
// serialization point: only the caller whose conditional update hits the row
// moves any coins or ownership.
func (s *service) BuyListing(ctx context.Context, buyerID, communityID string, listingID int64) (*domain.Purchase, error) {
	if err := s.requireMarket(ctx, communityID); err != nil {
		return nil, err
	}

	listing, err := s.repo.GetActiveListing(ctx, communityID, listingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetListingFailed, err)
	}
	if listing.SellerID == buyerID {
		return nil, domain.ErrSelfTrade
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	soldAt := s.now().UTC()
	flipped, err := tx.MarkListingSold(ctx, listing.ID, buyerID, soldAt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMarkSoldFailed, err)
	}
	if !flipped {
		return nil, domain.ErrAlreadySold
	}

	buyerBalance, err := tx.DebitAccount(ctx, communityID, buyerID, listing.Price)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDebitBuyerFailed, err)
	}
	if _, err := tx.CreditAccount(ctx, communityID, listing.SellerID, listing.Price); err != nil {
		return nil, fmt.Errorf(ErrMsgCreditSellerFailed, err)
	}

	moved, err := tx.TransferRelic(ctx, listing.RelicID, listing.SellerID, buyerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgTransferRelicFailed, err)
	}
	if !moved {
		// The seller no longer owns the relic; nothing can be delivered
		logger.FromContext(ctx).Warn(LogMsgRelicMoved, "listing", listing.ID, "relic", listing.RelicID)
		return nil, domain.ErrListingNotFound
	}

	relic, err := tx.GetRelicForUpdate(ctx, listing.RelicID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetRelicFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	buyer := buyerID
	listing.Status = domain.ListingSold
	listing.BuyerID = &buyer
	listing.SoldAt = &soldAt

	logger.FromContext(ctx).Info(LogMsgListingSold, "listing", listing.ID, "buyer", buyerID, "seller", listing.SellerID, "price", listing.Price)
	return &domain.Purchase{Listing: *listing, Relic: *relic, BuyerBalance: buyerBalance}, nil
}

func (s *service) CancelListing(ctx context.Context, sellerID string, listingID int64) error {
	ok, err := s.repo.CancelListing(ctx, sellerID, listingID)
	if err != nil {
		return fmt.Errorf(ErrMsgCancelListingFailed, err)
	}
	if !ok {
		return domain.ErrListingNotFound
	}
	logger.FromContext(ctx).Info(LogMsgListingCancelled, "listing", listingID, "seller", sellerID)
	return nil
}

func (s *service) ListActive(ctx context.Context, communityID string, page, pageSize int) (*domain.ListingPage, error) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	listings, total, err := s.repo.ListActive(ctx, communityID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListActiveFailed, err)
	}
	if listings == nil {
		listings = []domain.ListingView{}
	}
	return &domain.ListingPage{Listings: listings, Total: total, Page: page, PageSize: pageSize}, nil
}
