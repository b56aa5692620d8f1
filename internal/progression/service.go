package progression

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/cooldown"
	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
	"github.com/dhanushlnaik/mimisanv2/internal/reward"
)

// ConfigProvider resolves the community configuration
type ConfigProvider interface {
	Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error)
}

// XPGrant is a cooldown-gated community XP grant.
// A zero Amount draws the default chat amount scaled by the community chat rate.
// A zero Cooldown uses the tracker's default window.
type XPGrant struct {
	CommunityID string
	UserID      string
	Amount      int64
	Cooldown    time.Duration
}

// RankInfo is a user's position in a community
type RankInfo struct {
	Rank  int   `json:"rank"`
	Level int64 `json:"level"`
	XP    int64 `json:"xp"`
	Next  int64 `json:"next"`
}

// Service defines the interface for XP and levels
type Service interface {
	AddXp(ctx context.Context, grant XPGrant) (*domain.XPResult, error)
	GrantXp(ctx context.Context, communityID, userID string, amount int64) (*domain.XPResult, error)
	AddGlobalXp(ctx context.Context, userID string, amount int64) (*domain.GlobalXPResult, error)
	RecordMessage(ctx context.Context, communityID, channelID, userID string) (*domain.ActivityResult, error)
	RecordVoiceMinute(ctx context.Context, communityID, userID string) (*domain.ActivityResult, error)
	GetLevel(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error)
	GetRank(ctx context.Context, communityID, userID string) (*RankInfo, error)
	Leaderboard(ctx context.Context, communityID string, limit int) ([]domain.LevelRecord, error)
}

type service struct {
	repo      repository.Progression
	configs   ConfigProvider
	cooldowns *cooldown.Tracker
	src       reward.Source
	now       func() time.Time
}

// NewService creates a new progression service
func NewService(repo repository.Progression, configs ConfigProvider, cooldowns *cooldown.Tracker, src reward.Source) Service {
	return &service{
		repo:      repo,
		configs:   configs,
		cooldowns: cooldowns,
		src:       src,
		now:       time.Now,
	}
}

func (s *service) drawChatXP() int64 {
	return int64(ChatXPMin + s.src.IntN(ChatXPMax-ChatXPMin+1))
}

func scale(base int64, rate float64) int64 {
	return int64(math.Floor(float64(base) * rate))
}

func (s *service) AddXp(ctx context.Context, grant XPGrant) (*domain.XPResult, error) {
	if grant.Amount < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, grant.Amount)
	}
	window := grant.Cooldown
	if window <= 0 {
		window = s.cooldowns.Duration()
	}
	if err := s.cooldowns.TryAcquire(grant.CommunityID, grant.UserID, window); err != nil {
		return nil, err
	}

	amount := grant.Amount
	if amount == 0 {
		cfg, err := s.configs.Get(ctx, grant.CommunityID)
		if err != nil {
			s.cooldowns.Reset(grant.CommunityID, grant.UserID)
			return nil, fmt.Errorf(ErrMsgGetConfigFailed, err)
		}
		amount = scale(s.drawChatXP(), cfg.XPRateChat)
	}

	res, err := s.addXP(ctx, grant.CommunityID, grant.UserID, amount)
	if err != nil {
		// A failed grant must not burn the cooldown
		s.cooldowns.Reset(grant.CommunityID, grant.UserID)
		return nil, err
	}
	return res, nil
}

func (s *service) GrantXp(ctx context.Context, communityID, userID string, amount int64) (*domain.XPResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return s.addXP(ctx, communityID, userID, amount)
}

func (s *service) addXP(ctx context.Context, communityID, userID string, amount int64) (*domain.XPResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	res, err := AddXPTx(ctx, tx, communityID, userID, amount, s.now())
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	if res.LeveledUp {
		logger.FromContext(ctx).Info(LogMsgLevelUp, "community", communityID, "user", userID, "level", res.Level)
	}
	return res, nil
}

// AddXPTx applies a cooldown-free grant inside the caller's transaction
func AddXPTx(ctx context.Context, tx repository.LevelOps, communityID, userID string, amount int64, now time.Time) (*domain.XPResult, error) {
	rec, err := tx.GetLevelForUpdate(ctx, communityID, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLevelFailed, err)
	}

	leveled := applyXP(rec, amount)
	stamp := now.UTC()
	rec.LastXPAt = &stamp

	if err := tx.SaveLevel(ctx, rec); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveLevelFailed, err)
	}
	return &domain.XPResult{
		Granted:   amount,
		LeveledUp: leveled,
		Level:     rec.Level,
		XP:        rec.XP,
	}, nil
}

func (s *service) AddGlobalXp(ctx context.Context, userID string, amount int64) (*domain.GlobalXPResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetGlobalProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}
	leveled := applyGlobalXP(p, big.NewInt(amount))
	if err := tx.SaveGlobalLevel(ctx, p); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveProfileFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if leveled {
		logger.FromContext(ctx).Debug(LogMsgGlobalLevelUp, "user", userID, "level", p.GlobalLevel)
	}
	return &domain.GlobalXPResult{LeveledUp: leveled, Level: p.GlobalLevel, XP: p.GlobalXP}, nil
}

// RecordMessage grants chat XP for one message sent in channelID. Channels filtered
// out by the community's XP rules earn nothing. The cooldown gates only the
// community grant; global XP accrues on every counted message.
func (s *service) RecordMessage(ctx context.Context, communityID, channelID, userID string) (*domain.ActivityResult, error) {
	cfg, err := s.configs.Get(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetConfigFailed, err)
	}
	if !cfg.EarnsChatXP(channelID) {
		return &domain.ActivityResult{}, nil
	}

	base := s.drawChatXP()
	var res domain.ActivityResult
	if amount := scale(base, cfg.XPRateChat); amount > 0 {
		if err := s.cooldowns.TryAcquire(communityID, userID, s.cooldowns.Duration()); err == nil {
			if res.Community, err = s.addXP(ctx, communityID, userID, amount); err != nil {
				s.cooldowns.Reset(communityID, userID)
				return nil, err
			}
		}
	}
	s.addGlobalBestEffort(ctx, userID, base, &res)
	return &res, nil
}

// RecordVoiceMinute grants one minute of voice XP. The caller's ticker is the rate limit.
func (s *service) RecordVoiceMinute(ctx context.Context, communityID, userID string) (*domain.ActivityResult, error) {
	cfg, err := s.configs.Get(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetConfigFailed, err)
	}

	var res domain.ActivityResult
	if amount := scale(VoiceXPPerMinute, cfg.XPRateVC); amount > 0 {
		if res.Community, err = s.addXP(ctx, communityID, userID, amount); err != nil {
			return nil, err
		}
	}
	s.addGlobalBestEffort(ctx, userID, VoiceXPPerMinute, &res)
	return &res, nil
}

func (s *service) addGlobalBestEffort(ctx context.Context, userID string, amount int64, res *domain.ActivityResult) {
	global, err := s.AddGlobalXp(ctx, userID, amount)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgGlobalXPFailed, "user", userID, "error", err)
		return
	}
	res.Global = global
}

func (s *service) GetLevel(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error) {
	rec, err := s.repo.GetLevel(ctx, communityID, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLevelFailed, err)
	}
	return rec, nil
}

func (s *service) GetRank(ctx context.Context, communityID, userID string) (*RankInfo, error) {
	rec, err := s.GetLevel(ctx, communityID, userID)
	if err != nil {
		return nil, err
	}
	ahead, err := s.repo.CountAhead(ctx, communityID, rec.Level, rec.XP)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountRankFailed, err)
	}
	return &RankInfo{
		Rank:  ahead + 1,
		Level: rec.Level,
		XP:    rec.XP,
		Next:  XPForLevel(rec.Level),
	}, nil
}

func (s *service) Leaderboard(ctx context.Context, communityID string, limit int) ([]domain.LevelRecord, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	recs, err := s.repo.TopLevels(ctx, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLeaderboardFailed, err)
	}
	return recs, nil
}
