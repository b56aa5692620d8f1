package community

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 10 * time.Minute

	// CacheSchemaVersion is bumped when CommunityConfig changes shape so stale entries are dropped
	CacheSchemaVersion = "2"
)

// InvalidationChannel is the redis pub/sub channel carrying community IDs whose config changed
const InvalidationChannel = "mimi:community_config:invalidate"

// Error message formats
const (
	ErrMsgGetConfigFailed  = "failed to get community config: %w"
	ErrMsgSaveConfigFailed = "failed to save community config: %w"
	ErrMsgListFailed       = "failed to list community configs: %w"
	ErrMsgPublishFailed    = "failed to publish invalidation: %w"
)

// Log messages
const (
	LogMsgConfigUpdated     = "Community config updated"
	LogMsgPublishFailed     = "Failed to publish config invalidation"
	LogMsgInvalidationRecv  = "Received config invalidation"
	LogMsgSubscriberStopped = "Config invalidation subscriber stopped"
)
