package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tradeready/portal/internal/core/domain"
)

// DedupChecker is the in-memory counterpart of the redis dedup keys: one
// claim per user, kind and window.
type DedupChecker struct {
	mu   sync.Mutex
	seen map[string]time.Time
	now  func() time.Time
}

func NewDedupChecker() *DedupChecker {
	return &DedupChecker{seen: make(map[string]time.Time), now: time.Now}
}

func (d *DedupChecker) IsDuplicate(_ context.Context, email, kind string, ts time.Time) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(email, kind, ts)
	exp, ok := d.seen[k]
	if !ok {
		return false, nil
	}
	if d.now().After(exp) {
		delete(d.seen, k)
		return false, nil
	}
	return true, nil
}

func (d *DedupChecker) Mark(_ context.Context, email, kind string, ts time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(email, kind, ts)
	if exp, ok := d.seen[k]; !ok || d.now().After(exp) {
		d.seen[k] = d.now().Add(domain.ActivityKind(kind).DedupWindow() + time.Minute)
	}
	return nil
}

func key(email, kind string, ts time.Time) string {
	return fmt.Sprintf("%s:%s:%d", email, kind, domain.ActivityKind(kind).DedupBucket(ts).Unix())
}
