package config

import "time"

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "mimi-economy"
	DefaultVersion           = "dev"
	DefaultDBName            = "mimi"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultXPCooldown        = 60 * time.Second
	DefaultCooldownEntries   = 100_000
	DefaultConfigCacheSize   = 1000
	DefaultConfigCacheTTL    = 10 * time.Minute
	DefaultWorkerCount       = 2
	DefaultWorkerQueueSize   = 16
	DefaultShutdownTimeout   = 15 * time.Second
)
