package dungeon

import (
	"context"
	"fmt"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/inventory"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/progression"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
	"github.com/dhanushlnaik/mimisanv2/internal/reward"
)

// ConfigProvider resolves the community configuration
type ConfigProvider interface {
	Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error)
}

// EnterResult is the committed outcome of a dungeon attempt
type EnterResult struct {
	Outcome *reward.DungeonResult `json:"outcome"`
	Balance int64                 `json:"balance"`
	XP      *domain.XPResult      `json:"xp,omitempty"`
	Run     domain.DungeonRun     `json:"run"`
}

// Service defines the interface for dungeon runs
type Service interface {
	Enter(ctx context.Context, communityID, userID, rank string) (*EnterResult, error)
}

type service struct {
	repo    repository.Dungeon
	configs ConfigProvider
	engine  *reward.Engine
	now     func() time.Time
}

// NewService creates a new dungeon service
func NewService(repo repository.Dungeon, configs ConfigProvider, engine *reward.Engine) Service {
	return &service{repo: repo, configs: configs, engine: engine, now: time.Now}
}

// Enter charges the entry fee and resolves one attempt. A failed fee debit
// leaves no run behind. Wins credit coins, grant XP without a cooldown and
// store a dropped relic in the same transaction as the fee.
func (s *service) Enter(ctx context.Context, communityID, userID, rankName string) (*EnterResult, error) {
	rank, err := reward.ParseRank(rankName)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configs.Get(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetConfigFailed, err)
	}
	if err := cfg.RequireFeature(domain.FeatureDungeons); err != nil {
		return nil, err
	}

	equipped, err := s.repo.ListEquipped(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListEquippedFailed, err)
	}
	stats := inventory.Aggregate(equipped)

	tx, err := s.repo.BeginDungeonTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	fee := reward.EntryFees[rank]
	balance, err := tx.DebitAccount(ctx, communityID, userID, fee)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDebitFeeFailed, err)
	}

	outcome, err := s.engine.DungeonOutcome(rank, stats.DungeonBonus)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	run := domain.DungeonRun{
		UserID:      userID,
		CommunityID: communityID,
		Rank:        string(rank),
		EntryFee:    fee,
		Outcome:     domain.OutcomeLoss,
		CompletedAt: now,
	}
	if outcome.Won {
		run.Outcome = domain.OutcomeWin
		run.Payout = outcome.Coins
	}
	if err := tx.InsertDungeonRun(ctx, &run); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertRunFailed, err)
	}

	res := &EnterResult{Outcome: outcome, Run: run}
	if outcome.Won {
		if balance, err = tx.CreditAccount(ctx, communityID, userID, outcome.Coins); err != nil {
			return nil, fmt.Errorf(ErrMsgCreditRewardFailed, err)
		}
		if res.XP, err = progression.AddXPTx(ctx, tx, communityID, userID, outcome.XP, now); err != nil {
			return nil, fmt.Errorf(ErrMsgGrantXPFailed, err)
		}
		if outcome.Relic != nil {
			outcome.Relic.OwnerID = userID
			outcome.Relic.Source = domain.SourceDungeon
			outcome.Relic.ObtainedAt = now
			if err := tx.CreateRelic(ctx, outcome.Relic); err != nil {
				return nil, fmt.Errorf(ErrMsgCreateRelicFailed, err)
			}
		}
	}
	res.Balance = balance

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log := logger.FromContext(ctx)
	if outcome.Won {
		log.Info(LogMsgDungeonCleared, "community", communityID, "user", userID, "rank", rank, "coins", outcome.Coins, "xp", outcome.XP)
	} else {
		log.Info(LogMsgDungeonFailed, "community", communityID, "user", userID, "rank", rank, "fee", fee)
	}
	return res, nil
}
