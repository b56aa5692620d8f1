// Package salary runs the scheduled batch payouts: the daily per-community
// salary and the weekly global salary. Each payout is a single set-based
// statement in the store, so a community is paid completely or not at all.
package salary

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// ConfigLister enumerates every stored community config
type ConfigLister interface {
	ListConfigs(ctx context.Context) ([]domain.CommunityConfig, error)
}

// DailyReport summarises one daily run
type DailyReport struct {
	Communities int      `json:"communities"`
	MembersPaid int64    `json:"members_paid"`
	Failed      []string `json:"failed,omitempty"`
}

// Service defines the interface for salary payouts
type Service interface {
	PayDaily(ctx context.Context) (*DailyReport, error)
	PayCommunity(ctx context.Context, cfg domain.CommunityConfig) (int64, error)
	PayWeekly(ctx context.Context) (int64, error)
}

type service struct {
	repo    repository.Salary
	configs ConfigLister
}

// NewService creates a new salary service
func NewService(repo repository.Salary, configs ConfigLister) Service {
	return &service{repo: repo, configs: configs}
}

// PayDaily pays every stored community. A failing community is logged and
// reported; the rest of the batch still runs.
func (s *service) PayDaily(ctx context.Context) (*DailyReport, error) {
	log := logger.FromContext(ctx)

	configs, err := s.configs.ListConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListConfigsFailed, err)
	}
	log.Info(LogMsgDailyStarted, "communities", len(configs))

	report := &DailyReport{Communities: len(configs)}
	for _, cfg := range configs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		paid, err := s.PayCommunity(ctx, cfg)
		if err != nil {
			log.Error(LogMsgCommunityFailed, "community", cfg.CommunityID, "error", err)
			report.Failed = append(report.Failed, cfg.CommunityID)
			continue
		}
		report.MembersPaid += paid
	}

	log.Info(LogMsgDailyFinished, "communities", report.Communities, "members_paid", report.MembersPaid, "failed", len(report.Failed))
	return report, nil
}

// PayCommunity pays one community according to its salary mode
func (s *service) PayCommunity(ctx context.Context, cfg domain.CommunityConfig) (int64, error) {
	log := logger.FromContext(ctx)

	switch cfg.SalaryMode {
	case domain.SalaryTiered:
		tiers := ParseTiers(ctx, cfg.SalaryData)
		if len(tiers) == 0 {
			log.Debug(LogMsgNoTiers, "community", cfg.CommunityID)
			return 0, nil
		}
		paid, err := s.repo.PayTieredSalary(ctx, cfg.CommunityID, tiers)
		if err != nil {
			return 0, fmt.Errorf(ErrMsgPayTieredFailed, err)
		}
		log.Debug(LogMsgCommunityPaid, "community", cfg.CommunityID, "mode", cfg.SalaryMode, "members", paid)
		return paid, nil
	case domain.SalaryLinear, "":
		base := cfg.SalaryBase
		if base <= 0 {
			base = domain.DefaultSalaryBase
		}
		paid, err := s.repo.PayLinearSalary(ctx, cfg.CommunityID, base)
		if err != nil {
			return 0, fmt.Errorf(ErrMsgPayLinearFailed, err)
		}
		log.Debug(LogMsgCommunityPaid, "community", cfg.CommunityID, "mode", domain.SalaryLinear, "members", paid)
		return paid, nil
	default:
		log.Warn(LogMsgUnknownSalaryMode, "community", cfg.CommunityID, "mode", cfg.SalaryMode)
		return 0, nil
	}
}

func (s *service) PayWeekly(ctx context.Context) (int64, error) {
	paid, err := s.repo.PayWeeklyGlobalSalary(ctx, WeeklyExponent, WeeklyConstant)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgPayWeeklyFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgWeeklyFinished, "profiles_paid", paid)
	return paid, nil
}

// ParseTiers turns salary_data keys of the form "min-max" into tiers ordered by
// (min, max). Malformed keys, inverted ranges and negative values are skipped.
// When tiers overlap the store pays the last matching one in this order.
func ParseTiers(ctx context.Context, data map[string]int64) []domain.SalaryTier {
	tiers := make([]domain.SalaryTier, 0, len(data))
	for key, amount := range data {
		tier, ok := parseTier(key, amount)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgInvalidTier, "key", key)
			continue
		}
		tiers = append(tiers, tier)
	}
	sort.Slice(tiers, func(i, j int) bool {
		if tiers[i].Min != tiers[j].Min {
			return tiers[i].Min < tiers[j].Min
		}
		return tiers[i].Max < tiers[j].Max
	})
	return tiers
}

func parseTier(key string, amount int64) (domain.SalaryTier, bool) {
	lo, hi, found := strings.Cut(strings.TrimSpace(key), TierKeySeparator)
	if !found {
		return domain.SalaryTier{}, false
	}
	minLevel, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return domain.SalaryTier{}, false
	}
	maxLevel, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return domain.SalaryTier{}, false
	}
	if minLevel < 0 || maxLevel < minLevel || amount < 0 {
		return domain.SalaryTier{}, false
	}
	return domain.SalaryTier{Min: minLevel, Max: maxLevel, Amount: amount}, true
}
