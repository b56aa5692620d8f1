// Package fakestore is an in-memory implementation of the repository interfaces.
//
// Transactions are fully serialized: BeginTx takes the store lock and works on a
// private copy of the state, Commit publishes the copy and Rollback discards it.
// That gives the same all-or-nothing visibility as the postgres store while
// letting tests drive real concurrent callers. A goroutine holding a transaction
// must not call the non-transactional methods, or it will deadlock.
package fakestore

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

type userKey struct {
	community string
	user      string
}

type state struct {
	accounts map[userKey]*domain.Account
	globals  map[string]*domain.GlobalProfile
	levels   map[userKey]*domain.LevelRecord
	relics   map[int64]*domain.Relic
	listings map[int64]*domain.MarketListing
	configs  map[string]*domain.CommunityConfig
	rounds   []domain.CasinoRound
	runs     []domain.DungeonRun

	nextRelicID   int64
	nextListingID int64
	nextRoundID   int64
	nextRunID     int64
}

func newState() *state {
	return &state{
		accounts: map[userKey]*domain.Account{},
		globals:  map[string]*domain.GlobalProfile{},
		levels:   map[userKey]*domain.LevelRecord{},
		relics:   map[int64]*domain.Relic{},
		listings: map[int64]*domain.MarketListing{},
		configs:  map[string]*domain.CommunityConfig{},
	}
}

func (st *state) clone() *state {
	c := *st
	c.accounts = make(map[userKey]*domain.Account, len(st.accounts))
	for k, v := range st.accounts {
		a := *v
		c.accounts[k] = &a
	}
	c.globals = make(map[string]*domain.GlobalProfile, len(st.globals))
	for k, v := range st.globals {
		c.globals[k] = v.Clone()
	}
	c.levels = make(map[userKey]*domain.LevelRecord, len(st.levels))
	for k, v := range st.levels {
		l := *v
		c.levels[k] = &l
	}
	c.relics = make(map[int64]*domain.Relic, len(st.relics))
	for k, v := range st.relics {
		r := *v
		c.relics[k] = &r
	}
	c.listings = make(map[int64]*domain.MarketListing, len(st.listings))
	for k, v := range st.listings {
		l := *v
		c.listings[k] = &l
	}
	c.configs = make(map[string]*domain.CommunityConfig, len(st.configs))
	for k, v := range st.configs {
		cfg := cloneConfig(v)
		c.configs[k] = cfg
	}
	c.rounds = append([]domain.CasinoRound(nil), st.rounds...)
	c.runs = append([]domain.DungeonRun(nil), st.runs...)
	return &c
}

func cloneConfig(cfg *domain.CommunityConfig) *domain.CommunityConfig {
	c := *cfg
	c.SalaryData = make(map[string]int64, len(cfg.SalaryData))
	for k, v := range cfg.SalaryData {
		c.SalaryData[k] = v
	}
	c.XPChannels = slices.Clone(cfg.XPChannels)
	return &c
}

// Store is the in-memory store. The zero value is not usable; call New.
type Store struct {
	mu sync.Mutex
	st *state

	failMu   sync.Mutex
	failures map[string]error
}

// New returns an empty store
func New() *Store {
	return &Store{st: newState(), failures: map[string]error{}}
}

// FailOn makes every call of the named operation return err until cleared with a nil err
func (s *Store) FailOn(op string, err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) injected(op string) error {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	if err, ok := s.failures[op]; ok {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) begin() (*tx, error) {
	if err := s.injected("BeginTx"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &tx{s: s, st: s.st.clone()}, nil
}

// view runs fn against the committed state under the store lock
func (s *Store) view(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// tx implements every repository transaction interface
type tx struct {
	s    *Store
	st   *state
	done bool
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	if err := t.s.injected("Commit"); err != nil {
		t.done = true
		t.s.mu.Unlock()
		return err
	}
	t.s.st = t.st
	t.done = true
	t.s.mu.Unlock()
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	t.s.mu.Unlock()
	return nil
}

// --- accounts ---

func (st *state) account(communityID, userID string) *domain.Account {
	k := userKey{communityID, userID}
	a, ok := st.accounts[k]
	if !ok {
		a = &domain.Account{CommunityID: communityID, UserID: userID}
		st.accounts[k] = a
	}
	return a
}

func (st *state) creditAccount(communityID, userID string, amount int64) int64 {
	a := st.account(communityID, userID)
	a.Balance += amount
	return a.Balance
}

func (st *state) debitAccount(communityID, userID string, amount int64) (int64, error) {
	a, ok := st.accounts[userKey{communityID, userID}]
	if !ok || a.Balance < amount {
		return 0, domain.ErrInsufficientFunds
	}
	a.Balance -= amount
	return a.Balance, nil
}

func (st *state) global(userID string) *domain.GlobalProfile {
	p, ok := st.globals[userID]
	if !ok {
		p = domain.NewGlobalProfile(userID)
		st.globals[userID] = p
	}
	return p
}

func (st *state) creditGlobal(userID string, amount *big.Int) *big.Int {
	p := st.global(userID)
	p.Balance = new(big.Int).Add(p.Balance, amount)
	p.TotalEarnings = new(big.Int).Add(p.TotalEarnings, amount)
	return new(big.Int).Set(p.Balance)
}

func (st *state) debitGlobal(userID string, amount *big.Int) (*big.Int, error) {
	p, ok := st.globals[userID]
	if !ok || p.Balance.Cmp(amount) < 0 {
		return nil, domain.ErrInsufficientFunds
	}
	p.Balance = new(big.Int).Sub(p.Balance, amount)
	return new(big.Int).Set(p.Balance), nil
}

func (s *Store) GetOrCreateAccount(ctx context.Context, communityID, userID string) (*domain.Account, error) {
	var out domain.Account
	err := s.view(func(st *state) error {
		out = *st.account(communityID, userID)
		return nil
	})
	return &out, err
}

func (s *Store) CreditAccount(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	if err := s.injected("CreditAccount"); err != nil {
		return 0, err
	}
	var bal int64
	err := s.view(func(st *state) error {
		bal = st.creditAccount(communityID, userID, amount)
		return nil
	})
	return bal, err
}

func (s *Store) DebitAccount(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	if err := s.injected("DebitAccount"); err != nil {
		return 0, err
	}
	var bal int64
	err := s.view(func(st *state) error {
		var err error
		bal, err = st.debitAccount(communityID, userID, amount)
		return err
	})
	return bal, err
}

func (s *Store) GetOrCreateGlobalProfile(ctx context.Context, userID string) (*domain.GlobalProfile, error) {
	var out *domain.GlobalProfile
	err := s.view(func(st *state) error {
		out = st.global(userID).Clone()
		return nil
	})
	return out, err
}

func (s *Store) CreditGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	var bal *big.Int
	err := s.view(func(st *state) error {
		bal = st.creditGlobal(userID, amount)
		return nil
	})
	return bal, err
}

func (s *Store) DebitGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	var bal *big.Int
	err := s.view(func(st *state) error {
		var err error
		bal, err = st.debitGlobal(userID, amount)
		return err
	})
	return bal, err
}

func (s *Store) ClaimDaily(ctx context.Context, communityID, userID string, amount int64, now time.Time, window time.Duration) (*domain.Account, bool, error) {
	var out domain.Account
	var claimed bool
	err := s.view(func(st *state) error {
		a := st.account(communityID, userID)
		if a.DailyClaimedAt == nil || !now.Before(a.DailyClaimedAt.Add(window)) {
			a.Balance += amount
			stamp := now
			a.DailyClaimedAt = &stamp
			claimed = true
		}
		out = *a
		return nil
	})
	return &out, claimed, err
}

func (s *Store) TopAccounts(ctx context.Context, communityID string, limit int) ([]domain.Account, error) {
	var out []domain.Account
	err := s.view(func(st *state) error {
		for _, a := range st.accounts {
			if a.CommunityID == communityID {
				out = append(out, *a)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Balance != out[j].Balance {
			return out[i].Balance > out[j].Balance
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (t *tx) GetOrCreateAccount(ctx context.Context, communityID, userID string) (*domain.Account, error) {
	a := *t.st.account(communityID, userID)
	return &a, nil
}

func (t *tx) CreditAccount(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	if err := t.s.injected("CreditAccount"); err != nil {
		return 0, err
	}
	return t.st.creditAccount(communityID, userID, amount), nil
}

func (t *tx) DebitAccount(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	if err := t.s.injected("DebitAccount"); err != nil {
		return 0, err
	}
	return t.st.debitAccount(communityID, userID, amount)
}

func (t *tx) GetOrCreateGlobalProfile(ctx context.Context, userID string) (*domain.GlobalProfile, error) {
	return t.st.global(userID).Clone(), nil
}

func (t *tx) CreditGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	if err := t.s.injected("CreditGlobal"); err != nil {
		return nil, err
	}
	return t.st.creditGlobal(userID, amount), nil
}

func (t *tx) DebitGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	return t.st.debitGlobal(userID, amount)
}

// LockAccounts is a no-op; the transaction already holds the whole store
func (t *tx) LockAccounts(ctx context.Context, communityID string, userIDs ...string) error {
	return nil
}

func (t *tx) LockGlobalProfiles(ctx context.Context, userIDs ...string) error {
	return nil
}

// --- levels ---

func (st *state) level(communityID, userID string) *domain.LevelRecord {
	k := userKey{communityID, userID}
	l, ok := st.levels[k]
	if !ok {
		l = domain.NewLevelRecord(communityID, userID)
		st.levels[k] = l
	}
	return l
}

func (s *Store) GetLevel(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error) {
	out := domain.NewLevelRecord(communityID, userID)
	err := s.view(func(st *state) error {
		if l, ok := st.levels[userKey{communityID, userID}]; ok {
			*out = *l
		}
		return nil
	})
	return out, err
}

func (s *Store) CountAhead(ctx context.Context, communityID string, level, xp int64) (int, error) {
	n := 0
	err := s.view(func(st *state) error {
		for _, l := range st.levels {
			if l.CommunityID != communityID {
				continue
			}
			if l.Level > level || (l.Level == level && l.XP > xp) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (s *Store) TopLevels(ctx context.Context, communityID string, limit int) ([]domain.LevelRecord, error) {
	var out []domain.LevelRecord
	err := s.view(func(st *state) error {
		for _, l := range st.levels {
			if l.CommunityID == communityID {
				out = append(out, *l)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		if out[i].XP != out[j].XP {
			return out[i].XP > out[j].XP
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (t *tx) GetLevelForUpdate(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error) {
	if err := t.s.injected("GetLevelForUpdate"); err != nil {
		return nil, err
	}
	l := *t.st.level(communityID, userID)
	return &l, nil
}

func (t *tx) SaveLevel(ctx context.Context, rec *domain.LevelRecord) error {
	if err := t.s.injected("SaveLevel"); err != nil {
		return err
	}
	l := *rec
	t.st.levels[userKey{rec.CommunityID, rec.UserID}] = &l
	return nil
}

func (t *tx) GetGlobalProfileForUpdate(ctx context.Context, userID string) (*domain.GlobalProfile, error) {
	return t.st.global(userID).Clone(), nil
}

func (t *tx) SaveGlobalLevel(ctx context.Context, profile *domain.GlobalProfile) error {
	p := t.st.global(profile.UserID)
	p.GlobalXP = new(big.Int).Set(profile.GlobalXP)
	p.GlobalLevel = profile.GlobalLevel
	return nil
}

// --- relics ---

func (st *state) createRelic(relic *domain.Relic) {
	st.nextRelicID++
	relic.ID = st.nextRelicID
	if relic.ObtainedAt.IsZero() {
		relic.ObtainedAt = time.Now().UTC()
	}
	r := *relic
	st.relics[r.ID] = &r
}

func (st *state) relic(relicID int64) (*domain.Relic, error) {
	r, ok := st.relics[relicID]
	if !ok {
		return nil, domain.ErrRelicNotFound
	}
	out := *r
	return &out, nil
}

func (st *state) setEquipped(ownerID string, relicID int64, equipped bool) bool {
	r, ok := st.relics[relicID]
	if !ok || r.OwnerID != ownerID {
		return false
	}
	r.Equipped = equipped
	return true
}

func (st *state) ownedRelics(ownerID string, equippedOnly bool) []domain.Relic {
	var out []domain.Relic
	for _, r := range st.relics {
		if r.OwnerID == ownerID && (!equippedOnly || r.Equipped) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Equipped != out[j].Equipped {
			return out[i].Equipped
		}
		if !out[i].ObtainedAt.Equal(out[j].ObtainedAt) {
			return out[i].ObtainedAt.After(out[j].ObtainedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s *Store) CreateRelic(ctx context.Context, relic *domain.Relic) error {
	return s.view(func(st *state) error {
		st.createRelic(relic)
		return nil
	})
}

func (s *Store) GetRelic(ctx context.Context, relicID int64) (*domain.Relic, error) {
	var out *domain.Relic
	err := s.view(func(st *state) error {
		var err error
		out, err = st.relic(relicID)
		return err
	})
	return out, err
}

func (s *Store) ListRelics(ctx context.Context, ownerID string) ([]domain.Relic, error) {
	var out []domain.Relic
	err := s.view(func(st *state) error {
		out = st.ownedRelics(ownerID, false)
		return nil
	})
	return out, err
}

func (s *Store) ListEquipped(ctx context.Context, ownerID string) ([]domain.Relic, error) {
	if err := s.injected("ListEquipped"); err != nil {
		return nil, err
	}
	var out []domain.Relic
	err := s.view(func(st *state) error {
		out = st.ownedRelics(ownerID, true)
		return nil
	})
	return out, err
}

func (s *Store) SetEquipped(ctx context.Context, ownerID string, relicID int64, equipped bool) (bool, error) {
	var ok bool
	err := s.view(func(st *state) error {
		ok = st.setEquipped(ownerID, relicID, equipped)
		return nil
	})
	return ok, err
}

func (t *tx) CreateRelic(ctx context.Context, relic *domain.Relic) error {
	if err := t.s.injected("CreateRelic"); err != nil {
		return err
	}
	t.st.createRelic(relic)
	return nil
}

func (t *tx) LockOwner(ctx context.Context, ownerID string) error {
	return nil
}

func (t *tx) GetRelic(ctx context.Context, relicID int64) (*domain.Relic, error) {
	return t.st.relic(relicID)
}

func (t *tx) GetRelicForUpdate(ctx context.Context, relicID int64) (*domain.Relic, error) {
	return t.st.relic(relicID)
}

func (t *tx) CountEquipped(ctx context.Context, ownerID string) (int, error) {
	return len(t.st.ownedRelics(ownerID, true)), nil
}

func (t *tx) SetEquipped(ctx context.Context, ownerID string, relicID int64, equipped bool) (bool, error) {
	return t.st.setEquipped(ownerID, relicID, equipped), nil
}

func (t *tx) TransferRelic(ctx context.Context, relicID int64, fromID, toID string) (bool, error) {
	if err := t.s.injected("TransferRelic"); err != nil {
		return false, err
	}
	r, ok := t.st.relics[relicID]
	if !ok || r.OwnerID != fromID {
		return false, nil
	}
	r.OwnerID = toID
	r.Equipped = false
	return true, nil
}

// --- listings ---

func (st *state) hasActiveListing(relicID int64) bool {
	for _, l := range st.listings {
		if l.RelicID == relicID && l.Status == domain.ListingActive {
			return true
		}
	}
	return false
}

func (s *Store) GetActiveListing(ctx context.Context, communityID string, listingID int64) (*domain.MarketListing, error) {
	var out domain.MarketListing
	err := s.view(func(st *state) error {
		l, ok := st.listings[listingID]
		if !ok || l.CommunityID != communityID || l.Status != domain.ListingActive {
			return domain.ErrListingNotFound
		}
		out = *l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) ListActive(ctx context.Context, communityID string, limit, offset int) ([]domain.ListingView, int, error) {
	var all []domain.ListingView
	err := s.view(func(st *state) error {
		for _, l := range st.listings {
			if l.CommunityID != communityID || l.Status != domain.ListingActive {
				continue
			}
			v := domain.ListingView{MarketListing: *l}
			if r, ok := st.relics[l.RelicID]; ok {
				v.RelicName = r.Name
				v.RelicRarity = r.Rarity
			}
			all = append(all, v)
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool {
		if !all[i].ListedAt.Equal(all[j].ListedAt) {
			return all[i].ListedAt.After(all[j].ListedAt)
		}
		return all[i].ID > all[j].ID
	})
	total := len(all)
	if offset >= total {
		return []domain.ListingView{}, total, err
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, err
}

func (s *Store) CancelListing(ctx context.Context, sellerID string, listingID int64) (bool, error) {
	var ok bool
	err := s.view(func(st *state) error {
		l, found := st.listings[listingID]
		if found && l.SellerID == sellerID && l.Status == domain.ListingActive {
			l.Status = domain.ListingCancelled
			ok = true
		}
		return nil
	})
	return ok, err
}

func (t *tx) HasActiveListing(ctx context.Context, relicID int64) (bool, error) {
	return t.st.hasActiveListing(relicID), nil
}

func (t *tx) InsertListing(ctx context.Context, listing *domain.MarketListing) error {
	if t.st.hasActiveListing(listing.RelicID) {
		return domain.ErrAlreadyListed
	}
	t.st.nextListingID++
	listing.ID = t.st.nextListingID
	if listing.ListedAt.IsZero() {
		listing.ListedAt = time.Now().UTC()
	}
	l := *listing
	t.st.listings[l.ID] = &l
	return nil
}

func (t *tx) MarkListingSold(ctx context.Context, listingID int64, buyerID string, soldAt time.Time) (bool, error) {
	l, ok := t.st.listings[listingID]
	if !ok || l.Status != domain.ListingActive {
		return false, nil
	}
	buyer := buyerID
	l.Status = domain.ListingSold
	l.BuyerID = &buyer
	l.SoldAt = &soldAt
	return true, nil
}

// --- audit ---

func (t *tx) InsertCasinoRound(ctx context.Context, round *domain.CasinoRound) error {
	if err := t.s.injected("InsertCasinoRound"); err != nil {
		return err
	}
	t.st.nextRoundID++
	round.ID = t.st.nextRoundID
	t.st.rounds = append(t.st.rounds, *round)
	return nil
}

func (t *tx) InsertDungeonRun(ctx context.Context, run *domain.DungeonRun) error {
	if err := t.s.injected("InsertDungeonRun"); err != nil {
		return err
	}
	t.st.nextRunID++
	run.ID = t.st.nextRunID
	t.st.runs = append(t.st.runs, *run)
	return nil
}

func (s *Store) BeginCasinoTx(ctx context.Context) (repository.CasinoTx, error) {
	return s.begin()
}

func (s *Store) BeginDungeonTx(ctx context.Context) (repository.DungeonTx, error) {
	return s.begin()
}

// --- community configs ---

func (s *Store) GetOrCreateConfig(ctx context.Context, communityID string) (*domain.CommunityConfig, error) {
	if err := s.injected("GetOrCreateConfig"); err != nil {
		return nil, err
	}
	var out *domain.CommunityConfig
	err := s.view(func(st *state) error {
		cfg, ok := st.configs[communityID]
		if !ok {
			cfg = domain.DefaultCommunityConfig(communityID)
			cfg.UpdatedAt = time.Now().UTC()
			st.configs[communityID] = cfg
		}
		out = cloneConfig(cfg)
		return nil
	})
	return out, err
}

func (s *Store) SaveConfig(ctx context.Context, cfg *domain.CommunityConfig) error {
	if err := s.injected("SaveConfig"); err != nil {
		return err
	}
	return s.view(func(st *state) error {
		c := cloneConfig(cfg)
		c.UpdatedAt = time.Now().UTC()
		st.configs[cfg.CommunityID] = c
		return nil
	})
}

func (s *Store) ListConfigs(ctx context.Context) ([]domain.CommunityConfig, error) {
	if err := s.injected("ListConfigs"); err != nil {
		return nil, err
	}
	var out []domain.CommunityConfig
	err := s.view(func(st *state) error {
		for _, cfg := range st.configs {
			out = append(out, *cloneConfig(cfg))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CommunityID < out[j].CommunityID })
	return out, err
}

// --- salary ---

func (s *Store) PayLinearSalary(ctx context.Context, communityID string, base int64) (int64, error) {
	if err := s.injected("PayLinearSalary"); err != nil {
		return 0, err
	}
	var paid int64
	err := s.view(func(st *state) error {
		for k, l := range st.levels {
			if k.community != communityID {
				continue
			}
			st.creditAccount(k.community, k.user, l.Level*base)
			paid++
		}
		return nil
	})
	return paid, err
}

func (s *Store) PayTieredSalary(ctx context.Context, communityID string, tiers []domain.SalaryTier) (int64, error) {
	if err := s.injected("PayTieredSalary"); err != nil {
		return 0, err
	}
	var paid int64
	err := s.view(func(st *state) error {
		for k, l := range st.levels {
			if k.community != communityID {
				continue
			}
			var amount int64
			matched := false
			for _, tier := range tiers {
				if l.Level >= tier.Min && l.Level <= tier.Max {
					amount = tier.Amount
					matched = true
				}
			}
			if matched {
				st.creditAccount(k.community, k.user, amount)
				paid++
			}
		}
		return nil
	})
	return paid, err
}

func (s *Store) PayWeeklyGlobalSalary(ctx context.Context, exponent float64, constant int64) (int64, error) {
	if err := s.injected("PayWeeklyGlobalSalary"); err != nil {
		return 0, err
	}
	var paid int64
	now := time.Now().UTC()
	err := s.view(func(st *state) error {
		for _, p := range st.globals {
			amount := int64(math.Round(math.Pow(float64(p.GlobalLevel), exponent) * float64(constant)))
			st.creditGlobal(p.UserID, big.NewInt(amount))
			stamp := now
			p.LastWeeklyAt = &stamp
			paid++
		}
		return nil
	})
	return paid, err
}

var (
	_ repository.LedgerTx      = (*tx)(nil)
	_ repository.ProgressionTx = (*tx)(nil)
	_ repository.InventoryTx   = (*tx)(nil)
	_ repository.MarketTx      = (*tx)(nil)
	_ repository.CasinoTx      = (*tx)(nil)
	_ repository.DungeonTx     = (*tx)(nil)
	_ repository.Casino        = (*Store)(nil)
	_ repository.Dungeon       = (*Store)(nil)
	_ repository.Community     = (*Store)(nil)
	_ repository.Salary        = (*Store)(nil)
)
