package repository

import (
	"context"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// RelicOps are relic primitives shared by every transaction that can mint a relic
type RelicOps interface {
	CreateRelic(ctx context.Context, relic *domain.Relic) error
}

// InventoryTx defines the interface for equip transactions.
// LockOwner serialises all equip changes of one owner until the tx ends.
type InventoryTx interface {
	Tx
	LockOwner(ctx context.Context, ownerID string) error
	GetRelic(ctx context.Context, relicID int64) (*domain.Relic, error)
	CountEquipped(ctx context.Context, ownerID string) (int, error)
	SetEquipped(ctx context.Context, ownerID string, relicID int64, equipped bool) (bool, error)
}

// Inventory defines the interface for relic persistence
type Inventory interface {
	RelicOps
	GetRelic(ctx context.Context, relicID int64) (*domain.Relic, error)
	ListRelics(ctx context.Context, ownerID string) ([]domain.Relic, error)
	ListEquipped(ctx context.Context, ownerID string) ([]domain.Relic, error)
	SetEquipped(ctx context.Context, ownerID string, relicID int64, equipped bool) (bool, error)

	BeginTx(ctx context.Context) (InventoryTx, error)
}
