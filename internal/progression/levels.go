package progression

import (
	"math/big"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// XPForLevel is the XP needed to leave level
func XPForLevel(level int64) int64 {
	return 5*level*level + 50*level + 100
}

// applyXP adds amount to rec and performs at most one level-up, carrying the remainder
func applyXP(rec *domain.LevelRecord, amount int64) bool {
	rec.XP += amount
	need := XPForLevel(rec.Level)
	if rec.XP < need {
		return false
	}
	rec.XP -= need
	rec.Level++
	return true
}

// applyGlobalXP adds amount to the global track and levels up as many times as it covers
func applyGlobalXP(p *domain.GlobalProfile, amount *big.Int) bool {
	xp := new(big.Int).Add(p.GlobalXP, amount)
	leveled := false
	need := new(big.Int)
	for {
		need.SetInt64(XPForLevel(p.GlobalLevel))
		if xp.Cmp(need) < 0 {
			break
		}
		xp.Sub(xp, need)
		p.GlobalLevel++
		leveled = true
	}
	p.GlobalXP = xp
	return leveled
}
