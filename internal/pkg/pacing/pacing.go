package pacing

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultInterval = time.Second

// Pacer throttles outbound replies so a channel never receives more than one
// reply per interval.
type Pacer interface {
	// Wait blocks until the channel is allowed to receive another reply,
	// then records the send. It returns early with the context error when
	// ctx is canceled.
	Wait(ctx context.Context, channel string) error
}

// RedisPacer is a Pacer backed by Redis, so pacing holds across instances.
type RedisPacer struct {
	client   *redis.Client
	prefix   string
	interval time.Duration
}

// NewRedis constructs a RedisPacer with the given minimum reply interval.
// A non-positive interval falls back to one second.
func NewRedis(client *redis.Client, interval time.Duration) *RedisPacer {
	if interval <= 0 {
		interval = defaultInterval
	}

	return &RedisPacer{
		client:   client,
		prefix:   "pacing:",
		interval: interval,
	}
}

// Wait acquires the pacing slot for channel, sleeping while a previous reply
// still holds it.
func (p *RedisPacer) Wait(ctx context.Context, channel string) error {
	key := p.prefix + channel

	for {
		acquired, err := p.client.SetNX(ctx, key, "1", p.interval).Result()
		if err != nil {
			return err
		}
		if acquired {
			return nil
		}

		remaining, err := p.client.PTTL(ctx, key).Result()
		if err != nil {
			return err
		}
		if remaining <= 0 {
			remaining = time.Millisecond
		}

		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// NopPacer is a Pacer that never waits, for tests and local use.
type NopPacer struct{}

// NewNop returns a NopPacer.
func NewNop() *NopPacer {
	return &NopPacer{}
}

// Wait returns immediately.
func (*NopPacer) Wait(ctx context.Context, _ string) error {
	return ctx.Err()
}
