package ports

import (
	"context"
	"time"

	"github.com/tradeready/portal/internal/core/domain"
)

// ActivityInput is the DTO enqueued by callers that want an event recorded.
type ActivityInput struct {
	UserEmail string
	Kind      domain.ActivityKind
	Detail    string
	Timestamp time.Time
}

// ActivityRepository persists the activity log.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// Recent returns the newest events for email, newest first.
	Recent(ctx context.Context, email string, limit int) ([]domain.ActivityEvent, error)
}

// ActivityService records and lists activity events.
type ActivityService interface {
	Record(ctx context.Context, in ActivityInput) error
	Recent(ctx context.Context, email string, limit int) ([]domain.ActivityEvent, error)
}

// ActivityRecorder accepts events for asynchronous recording.
type ActivityRecorder interface {
	Enqueue(in ActivityInput)
}
