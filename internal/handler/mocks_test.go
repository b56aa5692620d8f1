package handler

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"

	"github.com/dhanushlnaik/mimisanv2/internal/casino"
	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/dungeon"
	"github.com/dhanushlnaik/mimisanv2/internal/ledger"
	"github.com/dhanushlnaik/mimisanv2/internal/progression"
	"github.com/dhanushlnaik/mimisanv2/internal/salary"
)

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, communityID, userID string) (*domain.Account, error) {
	args := m.Called(ctx, communityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) Credit(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, communityID, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) Debit(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, communityID, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, communityID, fromID, toID string, amount int64) (*ledger.TransferResult, error) {
	args := m.Called(ctx, communityID, fromID, toID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.TransferResult), args.Error(1)
}

func (m *MockLedgerService) ClaimDaily(ctx context.Context, communityID, userID string) (*domain.DailyClaim, error) {
	args := m.Called(ctx, communityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClaim), args.Error(1)
}

func (m *MockLedgerService) Leaderboard(ctx context.Context, communityID string, limit int) ([]domain.Account, error) {
	args := m.Called(ctx, communityID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockLedgerService) GetGlobalProfile(ctx context.Context, userID string) (*domain.GlobalProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GlobalProfile), args.Error(1)
}

func (m *MockLedgerService) CreditGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockLedgerService) DebitGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockLedgerService) TransferGlobal(ctx context.Context, fromID, toID string, amount *big.Int) error {
	args := m.Called(ctx, fromID, toID, amount)
	return args.Error(0)
}

type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) AddXp(ctx context.Context, grant progression.XPGrant) (*domain.XPResult, error) {
	args := m.Called(ctx, grant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.XPResult), args.Error(1)
}

func (m *MockProgressionService) GrantXp(ctx context.Context, communityID, userID string, amount int64) (*domain.XPResult, error) {
	args := m.Called(ctx, communityID, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.XPResult), args.Error(1)
}

func (m *MockProgressionService) AddGlobalXp(ctx context.Context, userID string, amount int64) (*domain.GlobalXPResult, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GlobalXPResult), args.Error(1)
}

func (m *MockProgressionService) RecordMessage(ctx context.Context, communityID, channelID, userID string) (*domain.ActivityResult, error) {
	args := m.Called(ctx, communityID, channelID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityResult), args.Error(1)
}

func (m *MockProgressionService) RecordVoiceMinute(ctx context.Context, communityID, userID string) (*domain.ActivityResult, error) {
	args := m.Called(ctx, communityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityResult), args.Error(1)
}

func (m *MockProgressionService) GetLevel(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error) {
	args := m.Called(ctx, communityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LevelRecord), args.Error(1)
}

func (m *MockProgressionService) GetRank(ctx context.Context, communityID, userID string) (*progression.RankInfo, error) {
	args := m.Called(ctx, communityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.RankInfo), args.Error(1)
}

func (m *MockProgressionService) Leaderboard(ctx context.Context, communityID string, limit int) ([]domain.LevelRecord, error) {
	args := m.Called(ctx, communityID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LevelRecord), args.Error(1)
}

type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) CreateListing(ctx context.Context, sellerID, communityID string, relicID, price int64) (*domain.MarketListing, error) {
	args := m.Called(ctx, sellerID, communityID, relicID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketListing), args.Error(1)
}

func (m *MockMarketService) BuyListing(ctx context.Context, buyerID, communityID string, listingID int64) (*domain.Purchase, error) {
	args := m.Called(ctx, buyerID, communityID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockMarketService) CancelListing(ctx context.Context, sellerID string, listingID int64) error {
	args := m.Called(ctx, sellerID, listingID)
	return args.Error(0)
}

func (m *MockMarketService) ListActive(ctx context.Context, communityID string, page, pageSize int) (*domain.ListingPage, error) {
	args := m.Called(ctx, communityID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}

type MockCasinoService struct {
	mock.Mock
}

func (m *MockCasinoService) Play(ctx context.Context, req casino.PlayRequest) (*casino.PlayResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*casino.PlayResult), args.Error(1)
}

type MockDungeonService struct {
	mock.Mock
}

func (m *MockDungeonService) Enter(ctx context.Context, communityID, userID, rank string) (*dungeon.EnterResult, error) {
	args := m.Called(ctx, communityID, userID, rank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dungeon.EnterResult), args.Error(1)
}

type MockSalaryService struct {
	mock.Mock
}

func (m *MockSalaryService) PayDaily(ctx context.Context) (*salary.DailyReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*salary.DailyReport), args.Error(1)
}

func (m *MockSalaryService) PayCommunity(ctx context.Context, cfg domain.CommunityConfig) (int64, error) {
	args := m.Called(ctx, cfg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalaryService) PayWeekly(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommunityService struct {
	mock.Mock
}

func (m *MockCommunityService) Invalidate(communityID string) {
	m.Called(communityID)
}

func (m *MockCommunityService) Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error) {
	args := m.Called(ctx, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityConfig), args.Error(1)
}

func (m *MockCommunityService) Update(ctx context.Context, communityID string, patch domain.CommunityConfigPatch) (*domain.CommunityConfig, error) {
	args := m.Called(ctx, communityID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityConfig), args.Error(1)
}

func (m *MockCommunityService) List(ctx context.Context) ([]domain.CommunityConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommunityConfig), args.Error(1)
}
