package reward

import "math"

// Coin sides
const (
	Heads CoinSide = "heads"
	Tails CoinSide = "tails"
)

// Slot symbols. Seven is the jackpot tier, Diamond the high tier, the rest low.
const (
	SymbolCherry  Symbol = "CHERRY"
	SymbolLemon   Symbol = "LEMON"
	SymbolGrape   Symbol = "GRAPE"
	SymbolDiamond Symbol = "DIAMOND"
	SymbolSeven   Symbol = "SEVEN"
)

// Symbols is the reel strip; every symbol is equally likely
var Symbols = []Symbol{SymbolCherry, SymbolLemon, SymbolGrape, SymbolDiamond, SymbolSeven}

// Slot payout multipliers
const (
	JackpotMultiplier  = 10
	HighMultiplier     = 5
	LowMultiplier      = 3
	CoinflipMultiplier = 2
)

// MaxBet is the largest bet whose best payout still fits in an int64
const MaxBet = math.MaxInt64 / JackpotMultiplier

// Probabilities
const (
	CoinHeadsChance      = 0.5
	RelicDropChance      = 0.10
	CasinoBonusChance    = 0.05
	DungeonBaseWinChance = 0.5
)

// CasinoBonusRank is the rank flavour of relics dropped by casino wins
const CasinoBonusRank Rank = RankS

// Dungeon ranks
const (
	RankE Rank = "E"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

// EntryFees maps each dungeon rank to its entry fee
var EntryFees = map[Rank]int64{
	RankE: 100,
	RankC: 500,
	RankB: 1500,
	RankA: 5000,
	RankS: 10000,
}

// Baseline relic produced by FlatDropTable
const (
	RelicNamePrefix         = "Ancient Ring of "
	RelicBaselineSalaryMult = 1.05
)

// Game names stored in casino audit records
const (
	GameCoinflip = "coinflip"
	GameSlots    = "slots"
)
