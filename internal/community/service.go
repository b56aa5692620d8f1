package community

import (
	"context"
	"fmt"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// Notifier tells other processes that a community's config changed
type Notifier interface {
	Publish(ctx context.Context, communityID string) error
}

// Invalidator drops a community's cached config
type Invalidator interface {
	Invalidate(communityID string)
}

// Service defines the interface for community configuration
type Service interface {
	Invalidator
	Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error)
	Update(ctx context.Context, communityID string, patch domain.CommunityConfigPatch) (*domain.CommunityConfig, error)
	List(ctx context.Context) ([]domain.CommunityConfig, error)
}

// Config holds cache settings
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo     repository.Community
	cache    *configCache
	notifier Notifier
}

// NewService creates a config service. notifier may be nil for single-process deployments.
func NewService(repo repository.Community, cfg Config, notifier Notifier) Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:     repo,
		cache:    newConfigCache(cfg.CacheSize, cfg.CacheTTL),
		notifier: notifier,
	}
}

func (s *service) Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error) {
	cfg, ok := s.cache.Get(communityID)
	metrics.RecordCacheLookup(ok)
	if ok {
		return cfg, nil
	}
	gen := s.cache.Generation(communityID)
	cfg, err := s.repo.GetOrCreateConfig(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetConfigFailed, err)
	}
	s.cache.SetIfCurrent(cfg, gen)
	return cfg, nil
}

func (s *service) Update(ctx context.Context, communityID string, patch domain.CommunityConfigPatch) (*domain.CommunityConfig, error) {
	current, err := s.repo.GetOrCreateConfig(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetConfigFailed, err)
	}

	updated := patch.ApplyTo(*current)
	if err := s.repo.SaveConfig(ctx, &updated); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveConfigFailed, err)
	}

	s.cache.Invalidate(communityID)
	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, communityID); err != nil {
			// Peers fall back to the cache TTL
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "community", communityID, "error", err)
		}
	}

	logger.FromContext(ctx).Info(LogMsgConfigUpdated, "community", communityID)
	return &updated, nil
}

func (s *service) Invalidate(communityID string) {
	s.cache.Invalidate(communityID)
}

func (s *service) List(ctx context.Context) ([]domain.CommunityConfig, error) {
	cfgs, err := s.repo.ListConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return cfgs, nil
}
