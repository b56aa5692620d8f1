package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// Service defines the interface for relic ownership and equip slots
type Service interface {
	ListRelics(ctx context.Context, userID string) ([]domain.Relic, error)
	Equip(ctx context.Context, userID string, relicID int64) (*domain.Relic, error)
	Unequip(ctx context.Context, userID string, relicID int64) error
	AggregateStats(ctx context.Context, userID string) (domain.AggregateStats, error)
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

func (s *service) ListRelics(ctx context.Context, userID string) ([]domain.Relic, error) {
	relics, err := s.repo.ListRelics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRelicsFailed, err)
	}
	return relics, nil
}

// Equip marks a relic as equipped. The owner lock makes the slot count and
// the flip one atomic step against concurrent equips by the same user.
func (s *service) Equip(ctx context.Context, userID string, relicID int64) (*domain.Relic, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.LockOwner(ctx, userID); err != nil {
		return nil, fmt.Errorf(ErrMsgLockOwnerFailed, err)
	}

	relic, err := tx.GetRelic(ctx, relicID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRelicNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetRelicFailed, err)
	}
	if relic.OwnerID != userID {
		return nil, domain.ErrRelicNotFound
	}
	if relic.Equipped {
		return nil, domain.ErrAlreadyEquipped
	}

	count, err := tx.CountEquipped(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountEquippedFailed, err)
	}
	if count >= domain.MaxEquippedRelics {
		return nil, fmt.Errorf("%w: %d of %d slots used", domain.ErrSlotLimitExceeded, count, domain.MaxEquippedRelics)
	}

	ok, err := tx.SetEquipped(ctx, userID, relicID, true)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSetEquippedFailed, err)
	}
	if !ok {
		return nil, domain.ErrRelicNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	relic.Equipped = true
	logger.FromContext(ctx).Info(LogMsgRelicEquipped, "user", userID, "relic", relicID)
	return relic, nil
}

func (s *service) Unequip(ctx context.Context, userID string, relicID int64) error {
	ok, err := s.repo.SetEquipped(ctx, userID, relicID, false)
	if err != nil {
		return fmt.Errorf(ErrMsgSetEquippedFailed, err)
	}
	if !ok {
		return domain.ErrRelicNotFound
	}
	logger.FromContext(ctx).Info(LogMsgRelicUnequipped, "user", userID, "relic", relicID)
	return nil
}

func (s *service) AggregateStats(ctx context.Context, userID string) (domain.AggregateStats, error) {
	equipped, err := s.repo.ListEquipped(ctx, userID)
	if err != nil {
		return domain.BaseStats(), fmt.Errorf(ErrMsgListRelicsFailed, err)
	}
	return Aggregate(equipped), nil
}

// Aggregate folds the modifiers of the given relics over the base stats
func Aggregate(relics []domain.Relic) domain.AggregateStats {
	agg := domain.BaseStats()
	for _, r := range relics {
		agg = agg.Apply(r.Stats)
	}
	return agg
}
