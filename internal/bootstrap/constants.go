package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting economy service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Config Invalidation
// =============================================================================

const (
	// SubscriberReadyTimeout bounds how long startup waits for the redis subscription
	SubscriberReadyTimeout = 5 * time.Second

	LogMsgInvalidationDisabled = "REDIS_ADDR not set, config invalidation is process-local"
	LogMsgInvalidationEnabled  = "Config invalidation via redis enabled"
	LogMsgSubscriberFailed     = "Config invalidation subscriber stopped"
	ErrMsgRedisConnectFailed   = "failed to connect to redis"
	ErrMsgSubscriberNotReady   = "config invalidation subscriber did not become ready"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSchedulerStopped     = "Scheduler stopped"
	LogMsgWorkerPoolStopped    = "Worker pool stopped"
	LogMsgSalaryWorkerFailed   = "Salary worker shutdown failed"
	LogMsgRedisCloseFailed     = "Redis client close failed"
)
