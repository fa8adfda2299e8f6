package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradeready/portal/internal/core/domain"
)

// dedupGrace keeps a window's key around for events delivered late by the
// activity queue.
const dedupGrace = time.Minute

// DedupChecker collapses repeated activity events per user and kind. Events
// whose timestamps share a kind's window map to one key:
// portal:activity:dedup:<kind>:<email>:<window start>.
type DedupChecker struct {
	client *redis.Client
}

func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

func (d *DedupChecker) IsDuplicate(ctx context.Context, email, kind string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, dedupKey(email, kind, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark claims the window of the event. The key lives for the window plus
// dedupGrace; an existing claim is left untouched.
func (d *DedupChecker) Mark(ctx context.Context, email, kind string, ts time.Time) error {
	ttl := domain.ActivityKind(kind).DedupWindow() + dedupGrace
	if err := d.client.SetNX(ctx, dedupKey(email, kind, ts), ts.UTC().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

func dedupKey(email, kind string, ts time.Time) string {
	bucket := domain.ActivityKind(kind).DedupBucket(ts)
	return fmt.Sprintf("portal:activity:dedup:%s:%s:%d", kind, email, bucket.Unix())
}
