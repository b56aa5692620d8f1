package cooldown

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// Config holds cooldown tracker configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Duration is the cooldown window; entries older than this expire from the cache
	Duration time.Duration

	// MaxEntries caps the number of tracked pairs
	MaxEntries int
}

// Tracker remembers the last XP grant time per (community, user).
// State is process-local and lost on restart.
type Tracker struct {
	mu     sync.Mutex
	cfg    Config
	recent *expirable.LRU[string, time.Time]
	now    func() time.Time
}

// NewTracker creates a tracker; zero config fields fall back to defaults
func NewTracker(cfg Config) *Tracker {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultCooldownDuration
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	return &Tracker{
		cfg:    cfg,
		recent: expirable.NewLRU[string, time.Time](cfg.MaxEntries, nil, cfg.Duration),
		now:    time.Now,
	}
}

// Duration returns the configured window
func (t *Tracker) Duration() time.Duration {
	return t.cfg.Duration
}

// TryAcquire records a grant for the pair unless one happened within window.
// A window longer than the tracker's configured duration is capped to it,
// since older entries have already expired from the cache.
func (t *Tracker) TryAcquire(communityID, userID string, window time.Duration) error {
	if t.cfg.DevMode {
		return nil
	}
	key := communityID + KeySeparator + userID
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if last, ok := t.recent.Get(key); ok {
		if elapsed := now.Sub(last); elapsed < window {
			return &Error{Remaining: window - elapsed}
		}
	}
	t.recent.Add(key, now)
	return nil
}

// Reset forgets the pair so the next grant is allowed immediately
func (t *Tracker) Reset(communityID, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recent.Remove(communityID + KeySeparator + userID)
}

// Error is returned when a grant is still on cooldown
type Error struct {
	Remaining time.Duration
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %ds remaining", domain.ErrMsgOnCooldown, int(e.Remaining.Seconds()))
}

func (e *Error) Unwrap() error {
	return domain.ErrOnCooldown
}
