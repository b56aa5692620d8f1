// Package reward holds the stateless probability and payout rules of the casino,
// the dungeons and relic drops. Nothing here touches the store; callers apply the
// returned outcome inside their own transaction.
package reward

import (
	"fmt"
	"math"
	"strings"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// CoinSide is a coinflip call or landing
type CoinSide string

// Symbol is one slot reel face
type Symbol string

// Rank is a dungeon difficulty rank
type Rank string

// Outcome is implemented by every game result
type Outcome interface {
	// Result reports whether the play won and the coins it pays out
	Result() (won bool, payout int64)
	isOutcome()
}

// CoinflipResult is the outcome of one coinflip
type CoinflipResult struct {
	Called CoinSide `json:"called"`
	Landed CoinSide `json:"landed"`
	Won    bool     `json:"won"`
	Payout int64    `json:"payout"`
}

func (r *CoinflipResult) Result() (bool, int64) { return r.Won, r.Payout }
func (*CoinflipResult) isOutcome()              {}

// SlotsResult is the outcome of one slots spin
type SlotsResult struct {
	Reels  [3]Symbol `json:"reels"`
	Won    bool      `json:"won"`
	Payout int64     `json:"payout"`
}

func (r *SlotsResult) Result() (bool, int64) { return r.Won, r.Payout }
func (*SlotsResult) isOutcome()              {}

// DungeonResult is the outcome of one dungeon attempt.
// Coins and XP are zero on a loss; the entry fee is already gone.
type DungeonResult struct {
	Rank      Rank          `json:"rank"`
	EntryFee  int64         `json:"entry_fee"`
	WinChance float64       `json:"win_chance"`
	Won       bool          `json:"won"`
	Coins     int64         `json:"coins"`
	XP        int64         `json:"xp"`
	Relic     *domain.Relic `json:"relic,omitempty"`
}

func (r *DungeonResult) Result() (bool, int64) { return r.Won, r.Coins }
func (*DungeonResult) isOutcome()              {}

// DropTable decides what a dropped relic looks like.
// The engine decides whether a drop happens at all.
type DropTable interface {
	Relic(rank Rank, src Source) domain.Relic
}

// FlatDropTable yields the same common ring for every rank
type FlatDropTable struct{}

func (FlatDropTable) Relic(rank Rank, _ Source) domain.Relic {
	mult := RelicBaselineSalaryMult
	return domain.Relic{
		Name:   RelicNamePrefix + string(rank),
		Rarity: domain.RarityCommon,
		Stats:  domain.RelicStats{SalaryMult: &mult},
	}
}

// Engine evaluates games against a random source
type Engine struct {
	src   Source
	drops DropTable
}

// NewEngine creates an engine; a nil drop table means FlatDropTable
func NewEngine(src Source, drops DropTable) *Engine {
	if drops == nil {
		drops = FlatDropTable{}
	}
	return &Engine{src: src, drops: drops}
}

// Source exposes the engine's random source to callers that draw alongside it
func (e *Engine) Source() Source {
	return e.src
}

// ParseCoinSide accepts "heads" or "tails" in any case
func ParseCoinSide(s string) (CoinSide, error) {
	switch side := CoinSide(strings.ToLower(strings.TrimSpace(s))); side {
	case Heads, Tails:
		return side, nil
	default:
		return "", fmt.Errorf("%w: side %q", domain.ErrInvalidGame, s)
	}
}

// ParseRank accepts a known dungeon rank in any case
func ParseRank(s string) (Rank, error) {
	r := Rank(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := EntryFees[r]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRank, s)
	}
	return r, nil
}

// Coinflip draws once; a matching call pays double the bet
func (e *Engine) Coinflip(bet int64, called CoinSide) *CoinflipResult {
	landed := Tails
	if e.src.Float64() < CoinHeadsChance {
		landed = Heads
	}
	res := &CoinflipResult{Called: called, Landed: landed}
	if called == landed {
		res.Won = true
		res.Payout = payout(bet, CoinflipMultiplier)
	}
	return res
}

// Slots spins three independent reels
func (e *Engine) Slots(bet int64) *SlotsResult {
	var res SlotsResult
	for i := range res.Reels {
		res.Reels[i] = Symbols[e.src.IntN(len(Symbols))]
	}
	r := res.Reels
	switch {
	case r[0] == r[1] && r[1] == r[2]:
		res.Won = true
		res.Payout = payout(bet, tripleMultiplier(r[0]))
	case r[0] == r[1] || r[1] == r[2] || r[0] == r[2]:
		res.Won = true
		res.Payout = saturatingAdd(bet, bet/2)
	}
	return &res
}

// payout multiplies bet, saturating at math.MaxInt64 for bets above MaxBet
func payout(bet, mult int64) int64 {
	if bet > math.MaxInt64/mult {
		return math.MaxInt64
	}
	return bet * mult
}

func saturatingAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func tripleMultiplier(s Symbol) int64 {
	switch s {
	case SymbolSeven:
		return JackpotMultiplier
	case SymbolDiamond:
		return HighMultiplier
	default:
		return LowMultiplier
	}
}

// RollRelicDrop returns a relic with RelicDropChance probability, otherwise nil.
// The chance does not depend on rank.
func (e *Engine) RollRelicDrop(rank Rank) *domain.Relic {
	if e.src.Float64() >= RelicDropChance {
		return nil
	}
	relic := e.drops.Relic(rank, e.src)
	return &relic
}

// CasinoBonusDrop is the jackpot side-effect of a casino win: an independent
// CasinoBonusChance draw that, when hit, rolls a rank S relic drop.
func (e *Engine) CasinoBonusDrop(won bool) *domain.Relic {
	if !won || e.src.Float64() >= CasinoBonusChance {
		return nil
	}
	return e.RollRelicDrop(CasinoBonusRank)
}

// WinChance is the dungeon success probability for a relic bonus in percent
func WinChance(dungeonBonusPercent float64) float64 {
	c := DungeonBaseWinChance + dungeonBonusPercent/100
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}

// DungeonOutcome draws a dungeon attempt. A win pays 1.5x the fee in coins,
// half the fee in XP and one relic drop roll.
func (e *Engine) DungeonOutcome(rank Rank, dungeonBonusPercent float64) (*DungeonResult, error) {
	fee, ok := EntryFees[rank]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRank, rank)
	}
	res := &DungeonResult{
		Rank:      rank,
		EntryFee:  fee,
		WinChance: WinChance(dungeonBonusPercent),
	}
	if e.src.Float64() >= res.WinChance {
		return res, nil
	}
	res.Won = true
	res.Coins = fee + fee/2
	res.XP = fee / 2
	res.Relic = e.RollRelicDrop(rank)
	return res, nil
}
