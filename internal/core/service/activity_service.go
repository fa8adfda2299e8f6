package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

const defaultRecentLimit = 10

// DedupChecker abstracts the idempotency store (Redis or memory).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, email, kind string, ts time.Time) (bool, error)
	Mark(ctx context.Context, email, kind string, ts time.Time) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Record deduplicates and persists a single activity event.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	kind := string(in.Kind)
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	// Duplicates are skipped silently; a failing dedup store does not block recording.
	isDup, err := s.dedup.IsDuplicate(ctx, in.UserEmail, kind, ts)
	if err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("dedup check failed, recording anyway")
	} else if isDup {
		s.log.Debug().Str("kind", kind).Msg("duplicate activity skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, in.UserEmail, kind, ts); markErr != nil {
		s.log.Warn().Err(markErr).Str("kind", kind).Msg("failed to set dedup key")
	}

	event := &domain.ActivityEvent{
		UserEmail: in.UserEmail,
		Kind:      in.Kind,
		Detail:    in.Detail,
		Timestamp: ts,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().Str("kind", kind).Msg("activity recorded")
	return nil
}

func (s *activityService) Recent(ctx context.Context, email string, limit int) ([]domain.ActivityEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultRecentLimit
	}
	events, err := s.repo.Recent(ctx, email, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return events, nil
}
