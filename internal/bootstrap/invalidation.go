package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dhanushlnaik/mimisanv2/internal/community"
	"github.com/dhanushlnaik/mimisanv2/internal/config"
)

// InitializeInvalidation connects to redis when REDIS_ADDR is set.
// Both return values are nil when it is not; the config cache then only
// sees this process's own updates.
func InitializeInvalidation(ctx context.Context, cfg *config.Config) (*redis.Client, community.Notifier, error) {
	if !cfg.RedisEnabled() {
		slog.Info(LogMsgInvalidationDisabled)
		return nil, nil, nil
	}

	client, err := community.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgRedisConnectFailed, err)
	}

	slog.Info(LogMsgInvalidationEnabled, "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return client, community.NewRedisNotifier(client), nil
}

// StartSubscriber runs the invalidation subscriber until ctx is cancelled and
// waits for the subscription to go live before returning
func StartSubscriber(ctx context.Context, client *redis.Client, target community.Invalidator) error {
	ready := make(chan struct{})
	failed := make(chan error, 1)

	go func() {
		if err := community.NewSubscriber(client, target).Run(ctx, ready); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error(LogMsgSubscriberFailed, "error", err)
			failed <- err
		}
	}()

	select {
	case <-ready:
		return nil
	case err := <-failed:
		return err
	case <-time.After(SubscriberReadyTimeout):
		return errors.New(ErrMsgSubscriberNotReady)
	}
}
