package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeready/portal/internal/core/domain"
)

const collectionActivity = "activity_events"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	col *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

type mongoActivity struct {
	UserEmail   string    `bson:"user_email"`
	Kind        string    `bson:"kind"`
	Detail      string    `bson:"detail,omitempty"`
	Timestamp   time.Time `bson:"timestamp"`
	ProcessedAt time.Time `bson:"processed_at"`
}

// Insert persists an activity event to the audit collection.
func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	doc := mongoActivity{
		UserEmail:   event.UserEmail,
		Kind:        string(event.Kind),
		Detail:      event.Detail,
		Timestamp:   event.Timestamp.UTC(),
		ProcessedAt: time.Now().UTC(),
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// Recent returns the newest events of a user.
func (r *ActivityRepository) Recent(ctx context.Context, email string, limit int) ([]domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"user_email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoActivity
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}

	events := make([]domain.ActivityEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.ActivityEvent{
			UserEmail: d.UserEmail,
			Kind:      domain.ActivityKind(d.Kind),
			Detail:    d.Detail,
			Timestamp: d.Timestamp,
		})
	}
	return events, nil
}

// EnsureIndexes creates the per-user timeline index.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_email", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
