package community

import (
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

type cachedConfig struct {
	Version string
	Config  domain.CommunityConfig
}

// configCache is a read-through LRU of community configs with TTL expiry.
// Every invalidation bumps the key's generation; a load that started under an
// older generation is not stored.
type configCache struct {
	lru *expirable.LRU[string, *cachedConfig]

	mu          sync.Mutex
	generations map[string]uint64
}

func newConfigCache(size int, ttl time.Duration) *configCache {
	return &configCache{
		lru:         expirable.NewLRU[string, *cachedConfig](size, nil, ttl),
		generations: make(map[string]uint64),
	}
}

// Get returns a copy of the cached config; entries of another schema version are dropped
func (c *configCache) Get(communityID string) (*domain.CommunityConfig, bool) {
	entry, ok := c.lru.Get(communityID)
	if !ok {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(communityID)
		return nil, false
	}
	cfg := copyConfig(entry.Config)
	return &cfg, true
}

func (c *configCache) Set(cfg *domain.CommunityConfig) {
	c.lru.Add(cfg.CommunityID, &cachedConfig{Version: CacheSchemaVersion, Config: copyConfig(*cfg)})
}

// Generation is read before loading from the store and handed to SetIfCurrent
func (c *configCache) Generation(communityID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[communityID]
}

// SetIfCurrent stores cfg unless the key was invalidated after gen was read
func (c *configCache) SetIfCurrent(cfg *domain.CommunityConfig, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[cfg.CommunityID] != gen {
		return false
	}
	c.Set(cfg)
	return true
}

func (c *configCache) Invalidate(communityID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[communityID]++
	c.lru.Remove(communityID)
}

func (c *configCache) Len() int {
	return c.lru.Len()
}

// copyConfig detaches the salary map and channel list so cached values can't be mutated by callers
func copyConfig(cfg domain.CommunityConfig) domain.CommunityConfig {
	cfg.XPChannels = slices.Clone(cfg.XPChannels)
	data := make(map[string]int64, len(cfg.SalaryData))
	for k, v := range cfg.SalaryData {
		data[k] = v
	}
	cfg.SalaryData = data
	return cfg
}
