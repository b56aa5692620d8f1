package bootstrap

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dhanushlnaik/mimisanv2/internal/scheduler"
	"github.com/dhanushlnaik/mimisanv2/internal/server"
	"github.com/dhanushlnaik/mimisanv2/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Everything except Server may be nil.
type ShutdownComponents struct {
	Server       *server.Server
	Scheduler    *scheduler.Scheduler
	WorkerPool   *worker.Pool
	SalaryWorker *worker.SalaryWorker
	Redis        *redis.Client
	// StopSubscriber cancels the config invalidation subscriber
	StopSubscriber context.CancelFunc
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Salary timers and interval jobs (finish in-flight payouts)
// 3. Worker pool
// 4. Redis subscriber and client
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.SalaryWorker != nil {
		if err := components.SalaryWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSalaryWorkerFailed, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
		slog.Info(LogMsgSchedulerStopped)
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
		slog.Info(LogMsgWorkerPoolStopped)
	}

	if components.StopSubscriber != nil {
		components.StopSubscriber()
	}
	if components.Redis != nil {
		if err := components.Redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
