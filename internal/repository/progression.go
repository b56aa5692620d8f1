package repository

import (
	"context"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// LevelOps are the XP state primitives used inside a transaction.
// The ForUpdate getters create the row when missing and lock it.
type LevelOps interface {
	GetLevelForUpdate(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error)
	SaveLevel(ctx context.Context, rec *domain.LevelRecord) error
}

// GlobalLevelOps are the global XP primitives used inside a transaction
type GlobalLevelOps interface {
	GetGlobalProfileForUpdate(ctx context.Context, userID string) (*domain.GlobalProfile, error)
	SaveGlobalLevel(ctx context.Context, profile *domain.GlobalProfile) error
}

// ProgressionTx defines the interface for progression transactions
type ProgressionTx interface {
	Tx
	LevelOps
	GlobalLevelOps
}

// Progression defines the interface for XP persistence
type Progression interface {
	// GetLevel is read-only; members without a row come back as domain.NewLevelRecord
	GetLevel(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error)

	// CountAhead counts users in the community strictly ahead by (level desc, xp desc)
	CountAhead(ctx context.Context, communityID string, level, xp int64) (int, error)
	TopLevels(ctx context.Context, communityID string, limit int) ([]domain.LevelRecord, error)

	BeginTx(ctx context.Context) (ProgressionTx, error)
}
