package ports

import (
	"context"

	"github.com/tradeready/portal/internal/core/domain"
)

// AssessmentView is a snapshot of a tab's assessment walk.
type AssessmentView struct {
	Question     domain.Question
	CurrentIndex int
	Total        int
	Progress     float64
	Selected     string
	Answered     int
}

// AssessmentResult is returned when the last question is passed.
type AssessmentResult struct {
	Score    int
	Redirect string
}

// AssessmentService drives the readiness quiz for one tab.
type AssessmentService interface {
	Current(ctx context.Context, tabID string) (*AssessmentView, error)
	Answer(ctx context.Context, tabID, option string) (*AssessmentView, error)
	// Next returns a non-nil result only when the assessment was finalized.
	Next(ctx context.Context, tabID, userEmail string) (*AssessmentView, *AssessmentResult, error)
	Back(ctx context.Context, tabID string) (*AssessmentView, error)
	Restart(ctx context.Context, tabID string) error
	Completion(ctx context.Context, tabID string) (Completion, error)
}
