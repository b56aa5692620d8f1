package repository

import (
	"context"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// CasinoTx defines the interface for one casino play
type CasinoTx interface {
	Tx
	AccountOps
	RelicOps
	InsertCasinoRound(ctx context.Context, round *domain.CasinoRound) error
}

// Casino defines the interface for casino persistence
type Casino interface {
	BeginCasinoTx(ctx context.Context) (CasinoTx, error)
}

// DungeonTx defines the interface for one dungeon attempt
type DungeonTx interface {
	Tx
	AccountOps
	RelicOps
	LevelOps
	InsertDungeonRun(ctx context.Context, run *domain.DungeonRun) error
}

// Dungeon defines the interface for dungeon persistence
type Dungeon interface {
	ListEquipped(ctx context.Context, ownerID string) ([]domain.Relic, error)
	BeginDungeonTx(ctx context.Context) (DungeonTx, error)
}
