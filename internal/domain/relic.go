package domain

import "time"

// RelicStats holds optional stat modifiers carried by a relic
type RelicStats struct {
	SalaryMult   *float64 `json:"salary_mult,omitempty"`
	XPMult       *float64 `json:"xp_mult,omitempty"`
	DungeonBonus *float64 `json:"dungeon_bonus,omitempty"`
}

// Relic is a collectible item owned by exactly one user
type Relic struct {
	ID         int64      `json:"id"`
	OwnerID    string     `json:"owner_id"`
	Name       string     `json:"name"`
	Rarity     string     `json:"rarity"`
	Stats      RelicStats `json:"stats"`
	Equipped   bool       `json:"equipped"`
	Source     string     `json:"source"`
	ObtainedAt time.Time  `json:"obtained_at"`
}

// AggregateStats is the combined effect of all equipped relics
type AggregateStats struct {
	SalaryMult   float64 `json:"salary_mult"`
	XPMult       float64 `json:"xp_mult"`
	DungeonBonus float64 `json:"dungeon_bonus"`
}

// BaseStats is the aggregate of a user with nothing equipped
func BaseStats() AggregateStats {
	return AggregateStats{SalaryMult: 1.0, XPMult: 1.0, DungeonBonus: 0}
}

// Apply folds one relic's modifiers into the aggregate.
// Multipliers combine multiplicatively, the dungeon bonus additively.
func (a AggregateStats) Apply(s RelicStats) AggregateStats {
	if s.SalaryMult != nil {
		a.SalaryMult *= *s.SalaryMult
	}
	if s.XPMult != nil {
		a.XPMult *= *s.XPMult
	}
	if s.DungeonBonus != nil {
		a.DungeonBonus += *s.DungeonBonus
	}
	return a
}
