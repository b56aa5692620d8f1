// Package voice tracks who is sitting in voice channels and grants voice XP
// once per minute to every tracked member.
package voice

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
)

const (
	// TickInterval is how often the scheduler should run Process
	TickInterval = time.Minute

	LogMsgTickFailed = "Voice XP grant failed"
	LogMsgTickDone   = "Voice XP tick"
)

// Granter grants one minute of voice XP
type Granter interface {
	RecordVoiceMinute(ctx context.Context, communityID, userID string) (*domain.ActivityResult, error)
}

// Session is one tracked voice member
type Session struct {
	CommunityID string    `json:"community_id"`
	UserID      string    `json:"user_id"`
	JoinedAt    time.Time `json:"joined_at"`
	Minutes     int64     `json:"minutes"`
}

type sessionKey struct {
	community string
	user      string
}

// Tracker holds the active voice sessions
type Tracker struct {
	mu       sync.RWMutex
	sessions map[sessionKey]*Session
	granter  Granter
	now      func() time.Time
}

// NewTracker creates an empty tracker
func NewTracker(granter Granter) *Tracker {
	return &Tracker{
		sessions: make(map[sessionKey]*Session),
		granter:  granter,
		now:      time.Now,
	}
}

// Join starts a session; joining twice keeps the original session
func (t *Tracker) Join(communityID, userID string) {
	k := sessionKey{communityID, userID}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[k]; ok {
		return
	}
	t.sessions[k] = &Session{CommunityID: communityID, UserID: userID, JoinedAt: t.now().UTC()}
}

// Leave ends a session and returns it, or nil when the user was not tracked
func (t *Tracker) Leave(communityID, userID string) *Session {
	k := sessionKey{communityID, userID}

	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[k]
	if !ok {
		return nil
	}
	delete(t.sessions, k)
	out := *s
	return &out
}

// Active returns a snapshot of the sessions of one community
func (t *Tracker) Active(communityID string) []Session {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Session
	for _, s := range t.sessions {
		if s.CommunityID == communityID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// Tick grants one minute of voice XP to every tracked member.
// Failures are logged per member and do not stop the tick.
func (t *Tracker) Tick(ctx context.Context) int {
	t.mu.RLock()
	keys := make([]sessionKey, 0, len(t.sessions))
	for k := range t.sessions {
		keys = append(keys, k)
	}
	t.mu.RUnlock()

	log := logger.FromContext(ctx)
	granted := 0
	for _, k := range keys {
		if _, err := t.granter.RecordVoiceMinute(logger.WithUser(ctx, k.user), k.community, k.user); err != nil {
			log.Warn(LogMsgTickFailed, "community", k.community, "user", k.user, "error", err)
			continue
		}
		t.mu.Lock()
		// The member may have left while the grant was in flight
		if s, ok := t.sessions[k]; ok {
			s.Minutes++
		}
		t.mu.Unlock()
		metrics.VoiceMinutesGranted.Inc()
		granted++
	}
	if granted > 0 {
		log.Debug(LogMsgTickDone, "granted", granted)
	}
	return granted
}

// Process runs one tick; it makes the tracker a worker job
func (t *Tracker) Process(ctx context.Context) error {
	t.Tick(ctx)
	return nil
}
