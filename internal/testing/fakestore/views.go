package fakestore

import (
	"context"
	"math/big"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// LedgerRepo exposes the store as repository.Ledger
type LedgerRepo struct{ *Store }

func (r LedgerRepo) BeginTx(ctx context.Context) (repository.LedgerTx, error) { return r.begin() }

// ProgressionRepo exposes the store as repository.Progression
type ProgressionRepo struct{ *Store }

func (r ProgressionRepo) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	return r.begin()
}

// InventoryRepo exposes the store as repository.Inventory
type InventoryRepo struct{ *Store }

func (r InventoryRepo) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	return r.begin()
}

// MarketRepo exposes the store as repository.Market
type MarketRepo struct{ *Store }

func (r MarketRepo) BeginTx(ctx context.Context) (repository.MarketTx, error) { return r.begin() }

func (s *Store) Ledger() LedgerRepo           { return LedgerRepo{s} }
func (s *Store) Progression() ProgressionRepo { return ProgressionRepo{s} }
func (s *Store) Inventory() InventoryRepo     { return InventoryRepo{s} }
func (s *Store) Market() MarketRepo           { return MarketRepo{s} }

var (
	_ repository.Ledger      = LedgerRepo{}
	_ repository.Progression = ProgressionRepo{}
	_ repository.Inventory   = InventoryRepo{}
	_ repository.Market      = MarketRepo{}
)

// Test helpers. They bypass every invariant check and return copies.

// SetBalance overwrites a community balance
func (s *Store) SetBalance(communityID, userID string, balance int64) {
	_ = s.view(func(st *state) error {
		st.account(communityID, userID).Balance = balance
		return nil
	})
}

// Balance reads a community balance without creating the account
func (s *Store) Balance(communityID, userID string) int64 {
	var bal int64
	_ = s.view(func(st *state) error {
		if a, ok := st.accounts[userKey{communityID, userID}]; ok {
			bal = a.Balance
		}
		return nil
	})
	return bal
}

// SetGlobalBalance overwrites a global balance
func (s *Store) SetGlobalBalance(userID string, balance *big.Int) {
	_ = s.view(func(st *state) error {
		st.global(userID).Balance = new(big.Int).Set(balance)
		return nil
	})
}

// SetGlobalLevel overwrites a global level
func (s *Store) SetGlobalLevel(userID string, level int64) {
	_ = s.view(func(st *state) error {
		st.global(userID).GlobalLevel = level
		return nil
	})
}

// SetLevel stores a level record as-is
func (s *Store) SetLevel(rec domain.LevelRecord) {
	_ = s.view(func(st *state) error {
		st.levels[userKey{rec.CommunityID, rec.UserID}] = &rec
		return nil
	})
}

// AddRelic stores a relic and returns its assigned ID
func (s *Store) AddRelic(relic domain.Relic) int64 {
	_ = s.view(func(st *state) error {
		st.createRelic(&relic)
		return nil
	})
	return relic.ID
}

// Relic returns a stored relic or nil
func (s *Store) Relic(relicID int64) *domain.Relic {
	var out *domain.Relic
	_ = s.view(func(st *state) error {
		out, _ = st.relic(relicID)
		return nil
	})
	return out
}

// Listing returns a stored listing in any status or nil
func (s *Store) Listing(listingID int64) *domain.MarketListing {
	var out *domain.MarketListing
	_ = s.view(func(st *state) error {
		if l, ok := st.listings[listingID]; ok {
			c := *l
			out = &c
		}
		return nil
	})
	return out
}

// Listings returns every stored listing of a relic
func (s *Store) Listings(relicID int64) []domain.MarketListing {
	var out []domain.MarketListing
	_ = s.view(func(st *state) error {
		for _, l := range st.listings {
			if l.RelicID == relicID {
				out = append(out, *l)
			}
		}
		return nil
	})
	return out
}

// CasinoRounds returns the casino audit log
func (s *Store) CasinoRounds() []domain.CasinoRound {
	var out []domain.CasinoRound
	_ = s.view(func(st *state) error {
		out = append(out, st.rounds...)
		return nil
	})
	return out
}

// DungeonRuns returns the dungeon audit log
func (s *Store) DungeonRuns() []domain.DungeonRun {
	var out []domain.DungeonRun
	_ = s.view(func(st *state) error {
		out = append(out, st.runs...)
		return nil
	})
	return out
}
