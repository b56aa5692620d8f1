package community

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/dhanushlnaik/mimisanv2/internal/logger"
)

// NewRedisClient connects and pings; callers treat an error as "run without pub/sub"
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// RedisNotifier publishes invalidations on a redis channel
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

// NewRedisNotifier creates a notifier on InvalidationChannel
func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client, channel: InvalidationChannel}
}

func (n *RedisNotifier) Publish(ctx context.Context, communityID string) error {
	if err := n.client.Publish(ctx, n.channel, communityID).Err(); err != nil {
		return fmt.Errorf(ErrMsgPublishFailed, err)
	}
	return nil
}

// Subscriber applies invalidations published by any process, including this one
type Subscriber struct {
	client  *redis.Client
	channel string
	target  Invalidator
}

// NewSubscriber creates a subscriber that forwards to target
func NewSubscriber(client *redis.Client, target Invalidator) *Subscriber {
	return &Subscriber{client: client, channel: InvalidationChannel, target: target}
}

// Run blocks until ctx is cancelled. ready, if non-nil, is closed once the subscription is live.
func (s *Subscriber) Run(ctx context.Context, ready chan<- struct{}) error {
	sub := s.client.Subscribe(ctx, s.channel)
	defer sub.Close()

	// Receive blocks until redis confirms the subscription
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", s.channel, err)
	}
	if ready != nil {
		close(ready)
	}

	log := logger.FromContext(ctx)
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info(LogMsgSubscriberStopped)
			return nil
		case msg, ok := <-ch:
			if !ok {
				log.Info(LogMsgSubscriberStopped)
				return nil
			}
			log.Debug(LogMsgInvalidationRecv, "community", msg.Payload)
			s.target.Invalidate(msg.Payload)
		}
	}
}
