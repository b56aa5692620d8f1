package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Salary Worker
// ============================================================================

// Job names
const (
	JobDailySalary  = "daily_salary"
	JobWeeklySalary = "weekly_salary"
	JobVoiceXP      = "voice_xp"
)

// Two-stage scheduling: far-off runs first sleep until StandbyLead before the
// run, then arm the exact timer. Early wake-ups beyond JitterTolerance re-arm.
const (
	StandbyThreshold = time.Hour
	StandbyLead      = 45 * time.Minute
	JitterTolerance  = 10 * time.Second
	SalaryRunTimeout = 10 * time.Minute
)

// WeeklySalaryDay is the UTC weekday of the weekly global salary
const WeeklySalaryDay = time.Sunday

// Log messages for salary worker operations
const (
	LogMsgSalaryStandby    = "Salary run standby"
	LogMsgSalaryScheduled  = "Salary run scheduled"
	LogMsgSalaryStarting   = "Salary run starting"
	LogMsgSalaryCompleted  = "Salary run completed"
	LogMsgSalaryFailed     = "Salary run failed"
	LogMsgSalaryEarlyFired = "Salary timer fired early, rescheduling"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
