package cooldown

import "time"

const (
	// DefaultCooldownDuration is the XP grant cooldown per (community, user)
	DefaultCooldownDuration = 60 * time.Second

	// DefaultMaxEntries bounds the tracker; evicting an entry only lets one extra grant through
	DefaultMaxEntries = 100_000

	// KeySeparator joins community and user into a tracker key
	KeySeparator = ":"
)
