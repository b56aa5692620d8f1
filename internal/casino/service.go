// Package casino runs coinflip and slots plays against the ledger.
// A play is one transaction: the bet, the payout, any bonus relic and the
// audit round commit together or not at all.
package casino

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
	"github.com/dhanushlnaik/mimisanv2/internal/reward"
)

// ConfigProvider resolves the community configuration
type ConfigProvider interface {
	Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error)
}

// PlayRequest describes one casino play.
// Choice is the called side for coinflip and ignored for slots.
type PlayRequest struct {
	CommunityID string
	UserID      string
	Game        string
	Bet         int64
	Choice      string
}

// PlayResult is the committed outcome of a play
type PlayResult struct {
	Outcome reward.Outcome     `json:"outcome"`
	Balance int64              `json:"balance"`
	Relic   *domain.Relic      `json:"relic,omitempty"`
	Round   domain.CasinoRound `json:"round"`
}

// Service defines the interface for casino games
type Service interface {
	Play(ctx context.Context, req PlayRequest) (*PlayResult, error)
}

type service struct {
	repo    repository.Casino
	configs ConfigProvider
	engine  *reward.Engine
	now     func() time.Time
}

// NewService creates a new casino service
func NewService(repo repository.Casino, configs ConfigProvider, engine *reward.Engine) Service {
	return &service{repo: repo, configs: configs, engine: engine, now: time.Now}
}

func (s *service) Play(ctx context.Context, req PlayRequest) (*PlayResult, error) {
	if req.Bet <= 0 || req.Bet > reward.MaxBet {
		return nil, fmt.Errorf("%w: bet %d", domain.ErrInvalidAmount, req.Bet)
	}
	game := strings.ToLower(strings.TrimSpace(req.Game))

	var called reward.CoinSide
	switch game {
	case reward.GameCoinflip:
		side, err := reward.ParseCoinSide(req.Choice)
		if err != nil {
			return nil, err
		}
		called = side
	case reward.GameSlots:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidGame, req.Game)
	}

	cfg, err := s.configs.Get(ctx, req.CommunityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetConfigFailed, err)
	}
	if err := cfg.RequireFeature(domain.FeatureCasino); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginCasinoTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	balance, err := tx.DebitAccount(ctx, req.CommunityID, req.UserID, req.Bet)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDebitBetFailed, err)
	}

	var outcome reward.Outcome
	if game == reward.GameCoinflip {
		outcome = s.engine.Coinflip(req.Bet, called)
	} else {
		outcome = s.engine.Slots(req.Bet)
	}
	won, payout := outcome.Result()

	if payout > 0 {
		if balance, err = tx.CreditAccount(ctx, req.CommunityID, req.UserID, payout); err != nil {
			return nil, fmt.Errorf(ErrMsgCreditPayoutFailed, err)
		}
	}

	now := s.now().UTC()
	relic := s.engine.CasinoBonusDrop(won)
	if relic != nil {
		relic.OwnerID = req.UserID
		relic.Source = domain.SourceCasino
		relic.ObtainedAt = now
		if err := tx.CreateRelic(ctx, relic); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateRelicFailed, err)
		}
	}

	round := domain.CasinoRound{
		UserID:      req.UserID,
		CommunityID: req.CommunityID,
		Game:        game,
		Bet:         req.Bet,
		Outcome:     domain.OutcomeLoss,
		Payout:      payout,
		PlayedAt:    now,
	}
	if won {
		round.Outcome = domain.OutcomeWin
	}
	if err := tx.InsertCasinoRound(ctx, &round); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertRoundFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgRoundPlayed, "community", req.CommunityID, "user", req.UserID, "game", game, "bet", req.Bet, "payout", payout)
	if relic != nil {
		log.Info(LogMsgBonusRelic, "user", req.UserID, "relic", relic.ID)
	}
	return &PlayResult{Outcome: outcome, Balance: balance, Relic: relic, Round: round}, nil
}
