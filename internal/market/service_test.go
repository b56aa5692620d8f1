package market

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/testing/fakestore"
)

const community = "guild-1"

// MockConfigProvider implements ConfigProvider for testing
type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error) {
	args := m.Called(ctx, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityConfig), args.Error(1)
}

func setup(marketEnabled bool) (*service, *fakestore.Store) {
	store := fakestore.New()
	cfg := domain.DefaultCommunityConfig(community)
	cfg.MarketEnabled = marketEnabled
	configs := new(MockConfigProvider)
	configs.On("Get", mock.Anything, community).Return(cfg, nil)
	return NewService(store.Market(), configs).(*service), store
}

func TestCreateListing(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	relicID := store.AddRelic(domain.Relic{OwnerID: "seller", Name: "ring"})

	listing, err := svc.CreateListing(ctx, "seller", community, relicID, 500)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingActive, listing.Status)
	assert.NotZero(t, listing.ID)
	assert.Equal(t, int64(500), listing.Price)
}

func TestCreateListing_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("market disabled", func(t *testing.T) {
		svc, store := setup(false)
		id := store.AddRelic(domain.Relic{OwnerID: "seller"})
		_, err := svc.CreateListing(ctx, "seller", community, id, 10)
		assert.True(t, errors.Is(err, domain.ErrFeatureDisabled))
	})

	t.Run("invalid price", func(t *testing.T) {
		svc, store := setup(true)
		id := store.AddRelic(domain.Relic{OwnerID: "seller"})
		_, err := svc.CreateListing(ctx, "seller", community, id, 0)
		assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
	})

	t.Run("not owned", func(t *testing.T) {
		svc, store := setup(true)
		id := store.AddRelic(domain.Relic{OwnerID: "someone"})
		_, err := svc.CreateListing(ctx, "seller", community, id, 10)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("missing relic", func(t *testing.T) {
		svc, _ := setup(true)
		_, err := svc.CreateListing(ctx, "seller", community, 77, 10)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("equipped", func(t *testing.T) {
		svc, store := setup(true)
		id := store.AddRelic(domain.Relic{OwnerID: "seller", Equipped: true})
		_, err := svc.CreateListing(ctx, "seller", community, id, 10)
		assert.True(t, errors.Is(err, domain.ErrRelicEquipped))
	})

	t.Run("already listed", func(t *testing.T) {
		svc, store := setup(true)
		id := store.AddRelic(domain.Relic{OwnerID: "seller"})
		_, err := svc.CreateListing(ctx, "seller", community, id, 10)
		require.NoError(t, err)
		_, err = svc.CreateListing(ctx, "seller", community, id, 20)
		assert.True(t, errors.Is(err, domain.ErrAlreadyListed))
	})
}

func TestCreateListing_ConcurrentAtMostOneActive(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	id := store.AddRelic(domain.Relic{OwnerID: "seller"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = svc.CreateListing(ctx, "seller", community, id, int64(100+i))
		}(i)
	}
	wg.Wait()

	active := 0
	for _, l := range store.Listings(id) {
		if l.Status == domain.ListingActive {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestBuyListing(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	relicID := store.AddRelic(domain.Relic{OwnerID: "seller", Name: "ring"})
	store.SetBalance(community, "buyer", 1000)
	store.SetBalance(community, "seller", 20)

	listing, err := svc.CreateListing(ctx, "seller", community, relicID, 500)
	require.NoError(t, err)

	purchase, err := svc.BuyListing(ctx, "buyer", community, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), purchase.BuyerBalance)
	assert.Equal(t, domain.ListingSold, purchase.Listing.Status)
	require.NotNil(t, purchase.Listing.BuyerID)
	assert.Equal(t, "buyer", *purchase.Listing.BuyerID)
	assert.Equal(t, "buyer", purchase.Relic.OwnerID)

	assert.Equal(t, int64(500), store.Balance(community, "buyer"))
	assert.Equal(t, int64(520), store.Balance(community, "seller"))
	assert.Equal(t, "buyer", store.Relic(relicID).OwnerID)
	stored := store.Listing(listing.ID)
	assert.Equal(t, domain.ListingSold, stored.Status)
	assert.NotNil(t, stored.SoldAt)

	// Case: second buy sees no active listing
	_, err = svc.BuyListing(ctx, "buyer", community, listing.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBuyListing_InsufficientFundsNoPartialEffect(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	relicID := store.AddRelic(domain.Relic{OwnerID: "seller"})
	store.SetBalance(community, "buyer", 100)

	listing, err := svc.CreateListing(ctx, "seller", community, relicID, 500)
	require.NoError(t, err)

	_, err = svc.BuyListing(ctx, "buyer", community, listing.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))

	assert.Equal(t, int64(100), store.Balance(community, "buyer"))
	assert.Equal(t, int64(0), store.Balance(community, "seller"))
	assert.Equal(t, "seller", store.Relic(relicID).OwnerID)
	assert.Equal(t, domain.ListingActive, store.Listing(listing.ID).Status)
}

func TestBuyListing_StoreFailureRollsBack(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	relicID := store.AddRelic(domain.Relic{OwnerID: "seller"})
	store.SetBalance(community, "buyer", 1000)
	listing, err := svc.CreateListing(ctx, "seller", community, relicID, 300)
	require.NoError(t, err)

	store.FailOn("TransferRelic", errors.New("timeout"))
	_, err = svc.BuyListing(ctx, "buyer", community, listing.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindStoreUnavailable, domain.KindOf(err))

	assert.Equal(t, int64(1000), store.Balance(community, "buyer"))
	assert.Equal(t, domain.ListingActive, store.Listing(listing.ID).Status)
}

func TestBuyListing_SelfTradeAndScope(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	relicID := store.AddRelic(domain.Relic{OwnerID: "seller"})
	store.SetBalance(community, "seller", 1000)
	listing, err := svc.CreateListing(ctx, "seller", community, relicID, 100)
	require.NoError(t, err)

	_, err = svc.BuyListing(ctx, "seller", community, listing.ID)
	assert.True(t, errors.Is(err, domain.ErrSelfTrade))

	// Listing is invisible from another community
	other := new(MockConfigProvider)
	other.On("Get", mock.Anything, "guild-2").Return(domain.DefaultCommunityConfig("guild-2"), nil)
	svc.configs = other
	_, err = svc.BuyListing(ctx, "buyer", "guild-2", listing.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBuyListing_ConcurrentBuyersExactlyOne(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	relicID := store.AddRelic(domain.Relic{OwnerID: "seller"})
	listing, err := svc.CreateListing(ctx, "seller", community, relicID, 400)
	require.NoError(t, err)

	buyers := []string{"b1", "b2", "b3", "b4", "b5", "b6"}
	for _, b := range buyers {
		store.SetBalance(community, b, 1000)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(buyers))
	for i, b := range buyers {
		wg.Add(1)
		go func(i int, b string) {
			defer wg.Done()
			_, errs[i] = svc.BuyListing(ctx, b, community, listing.ID)
		}(i, b)
	}
	wg.Wait()

	winners := 0
	var total int64
	for i, err := range errs {
		if err == nil {
			winners++
			assert.Equal(t, buyers[i], store.Relic(relicID).OwnerID)
		} else {
			kind := domain.KindOf(err)
			assert.True(t, kind == domain.KindAlreadySold || kind == domain.KindNotFound, "unexpected %v", err)
		}
		total += store.Balance(community, buyers[i])
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, int64(len(buyers)*1000-400), total)
	assert.Equal(t, int64(400), store.Balance(community, "seller"))
}

func TestCancelListing(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	relicID := store.AddRelic(domain.Relic{OwnerID: "seller"})
	listing, err := svc.CreateListing(ctx, "seller", community, relicID, 100)
	require.NoError(t, err)

	err = svc.CancelListing(ctx, "intruder", listing.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, svc.CancelListing(ctx, "seller", listing.ID))
	assert.Equal(t, domain.ListingCancelled, store.Listing(listing.ID).Status)

	// Terminal
	err = svc.CancelListing(ctx, "seller", listing.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// Relic can be listed again
	_, err = svc.CreateListing(ctx, "seller", community, relicID, 150)
	assert.NoError(t, err)
}

func TestListActive(t *testing.T) {
	svc, store := setup(true)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	var ids []int64
	for i := 0; i < 5; i++ {
		relicID := store.AddRelic(domain.Relic{OwnerID: "seller", Name: "r", Rarity: domain.RarityCommon})
		l, err := svc.CreateListing(ctx, "seller", community, relicID, 100)
		require.NoError(t, err)
		ids = append(ids, l.ID)
	}
	require.NoError(t, svc.CancelListing(ctx, "seller", ids[0]))

	page, err := svc.ListActive(ctx, community, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	require.Len(t, page.Listings, 3)
	assert.Equal(t, ids[4], page.Listings[0].ID)
	assert.Equal(t, "r", page.Listings[0].RelicName)
	assert.Equal(t, domain.RarityCommon, page.Listings[0].RelicRarity)

	page, err = svc.ListActive(ctx, community, 2, 3)
	require.NoError(t, err)
	require.Len(t, page.Listings, 1)
	assert.Equal(t, ids[1], page.Listings[0].ID)

	// Bounds are clamped
	page, err = svc.ListActive(ctx, community, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, MaxPageSize, page.PageSize)

	page, err = svc.ListActive(ctx, community, 9, 3)
	require.NoError(t, err)
	assert.Empty(t, page.Listings)

	// A huge page number is capped instead of wrapping the offset negative
	page, err = svc.ListActive(ctx, community, math.MaxInt/25, MaxPageSize)
	require.NoError(t, err)
	assert.Equal(t, MaxPage, page.Page)
	assert.Empty(t, page.Listings)
	assert.Equal(t, 4, page.Total)
	assert.NotNil(t, page.Listings)
}
