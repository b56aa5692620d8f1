package metrics

import (
	"strconv"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// RecordCasinoRound records one committed casino round
func RecordCasinoRound(round domain.CasinoRound, relicDropped bool) {
	CasinoRounds.WithLabelValues(round.Game, round.Outcome).Inc()
	CasinoWagered.WithLabelValues(round.Game).Add(float64(round.Bet))
	CasinoPaidOut.WithLabelValues(round.Game).Add(float64(round.Payout))
	if relicDropped {
		RelicsDropped.WithLabelValues(domain.SourceCasino).Inc()
	}
}

// RecordDungeonRun records one committed dungeon attempt
func RecordDungeonRun(run domain.DungeonRun, relicDropped, leveledUp bool) {
	DungeonRuns.WithLabelValues(run.Rank, run.Outcome).Inc()
	if relicDropped {
		RelicsDropped.WithLabelValues(domain.SourceDungeon).Inc()
	}
	if leveledUp {
		LevelUps.Inc()
	}
}

// RecordSale records one completed market purchase
func RecordSale(price int64) {
	ListingsSold.Inc()
	MarketVolume.Add(float64(price))
}

// RecordSalaryRun records the outcome of a salary batch
func RecordSalaryRun(job string, membersPaid int64, err error) {
	if err != nil {
		SalaryRuns.WithLabelValues(job, ResultFailure).Inc()
		return
	}
	SalaryRuns.WithLabelValues(job, ResultSuccess).Inc()
	SalaryMembersPaid.WithLabelValues(job).Add(float64(membersPaid))
}

// RecordError counts a failed operation under its error kind
func RecordError(operation string, err error) {
	if err == nil {
		return
	}
	OperationErrors.WithLabelValues(operation, string(domain.KindOf(err))).Inc()
}

// RecordCacheLookup counts a config cache hit or miss
func RecordCacheLookup(hit bool) {
	if hit {
		ConfigCacheRequests.WithLabelValues(ResultHit).Inc()
		return
	}
	ConfigCacheRequests.WithLabelValues(ResultMiss).Inc()
}

func statusLabel(code int) string {
	return strconv.Itoa(code)
}
