package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tradeready/portal/internal/core/domain"
)

// ActivityRepository is an in-memory activity log.
type ActivityRepository struct {
	mu     sync.RWMutex
	events map[string][]domain.ActivityEvent
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{events: make(map[string][]domain.ActivityEvent)}
}

func (r *ActivityRepository) Insert(_ context.Context, e *domain.ActivityEvent) error {
	r.mu.Lock()
	r.events[e.UserEmail] = append(r.events[e.UserEmail], *e)
	r.mu.Unlock()
	return nil
}

func (r *ActivityRepository) Recent(_ context.Context, email string, limit int) ([]domain.ActivityEvent, error) {
	r.mu.RLock()
	out := make([]domain.ActivityEvent, len(r.events[email]))
	copy(out, r.events[email])
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
