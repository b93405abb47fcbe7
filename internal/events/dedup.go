package events

import (
	"context"
	"time"

	"stayhub-notifications/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Deduper suppresses duplicate deliveries from the at-least-once bus.
// Best effort only: failing open keeps the at-least-once guarantee.
type Deduper interface {
	Seen(ctx context.Context, key string) bool
}

const dedupTTL = 24 * time.Hour

type redisDeduper struct {
	client *redis.Client
	logger *logger.Logger
}

func NewRedisDeduper(client *redis.Client, log *logger.Logger) Deduper {
	return &redisDeduper{client: client, logger: log}
}

func (d *redisDeduper) Seen(ctx context.Context, key string) bool {
	set, err := d.client.SetNX(ctx, "notif:event:"+key, "1", dedupTTL).Result()
	if err != nil {
		d.logger.Warn("Dedup check failed for %s, processing anyway: %v", key, err)
		return false
	}
	return !set
}

// NoopDeduper never suppresses anything. Used when redis is not configured.
type NoopDeduper struct{}

func (NoopDeduper) Seen(context.Context, string) bool { return false }
