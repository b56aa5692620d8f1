package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhanushlnaik/mimisanv2/internal/bootstrap"
	"github.com/dhanushlnaik/mimisanv2/internal/config"
	"github.com/dhanushlnaik/mimisanv2/internal/database"
	"github.com/dhanushlnaik/mimisanv2/internal/scheduler"
	"github.com/dhanushlnaik/mimisanv2/internal/server"
	"github.com/dhanushlnaik/mimisanv2/internal/voice"
	"github.com/dhanushlnaik/mimisanv2/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("Failed to validate configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxConnIdleTime,
		MaxLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if _, err := database.Migrate(ctx, dbPool); err != nil {
			return err
		}
	}

	redisClient, notifier, err := bootstrap.InitializeInvalidation(ctx, cfg)
	if err != nil {
		slog.Warn("Continuing without config invalidation", "error", err)
	}

	services := bootstrap.InitializeServices(cfg, bootstrap.InitializeRepositories(dbPool), notifier)

	subCtx, stopSubscriber := context.WithCancel(context.Background())
	if redisClient != nil {
		if err := bootstrap.StartSubscriber(subCtx, redisClient, services.Community); err != nil {
			slog.Warn("Config invalidation subscriber not running", "error", err)
		}
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(worker.JobVoiceXP, voice.TickInterval, services.VoiceTracker)

	var salaryWorker *worker.SalaryWorker
	if cfg.SchedulerEnabled {
		salaryWorker = worker.NewSalaryWorker(services.Salary)
		salaryWorker.Start()
	} else {
		slog.Info("Salary scheduler disabled")
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, services.Services)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		Scheduler:      sched,
		WorkerPool:     pool,
		SalaryWorker:   salaryWorker,
		Redis:          redisClient,
		StopSubscriber: stopSubscriber,
	})
	return nil
}
