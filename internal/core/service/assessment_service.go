package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

// AssessmentService keeps one Engine per tab in the TabStore.
type AssessmentService struct {
	tabs     ports.TabStore
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAssessmentService(tabs ports.TabStore, activity ports.ActivityRecorder, log zerolog.Logger) *AssessmentService {
	return &AssessmentService{tabs: tabs, activity: activity, log: log}
}

func (s *AssessmentService) Current(ctx context.Context, tabID string) (*ports.AssessmentView, error) {
	e, err := s.load(ctx, tabID)
	if err != nil {
		return nil, err
	}
	return view(e), nil
}

func (s *AssessmentService) Answer(ctx context.Context, tabID, option string) (*ports.AssessmentView, error) {
	e, err := s.load(ctx, tabID)
	if err != nil {
		return nil, err
	}
	if !e.Question().HasOption(option) {
		return nil, domain.ErrInvalidOption
	}
	e.RecordAnswer(option)
	if err := s.save(ctx, tabID, e); err != nil {
		return nil, err
	}
	return view(e), nil
}

func (s *AssessmentService) Next(ctx context.Context, tabID, userEmail string) (*ports.AssessmentView, *ports.AssessmentResult, error) {
	e, err := s.load(ctx, tabID)
	if err != nil {
		return nil, nil, err
	}

	outcome, err := e.Advance()
	if err != nil {
		return view(e), nil, err
	}
	if err := s.save(ctx, tabID, e); err != nil {
		return nil, nil, err
	}
	if outcome == nil {
		return view(e), nil, nil
	}

	if err := s.tabs.SetCompletion(ctx, tabID, ports.Completion{Complete: true, Score: outcome.Score}); err != nil {
		return nil, nil, fmt.Errorf("mark completion: %w", err)
	}

	status := domain.Classify(outcome.Score)
	s.log.Info().
		Int("score", outcome.Score).
		Str("status", string(status)).
		Msg("assessment completed")

	if userEmail != "" && s.activity != nil {
		s.activity.Enqueue(ports.ActivityInput{
			UserEmail: userEmail,
			Kind:      domain.ActivityAssessmentCompleted,
			Detail:    strconv.Itoa(outcome.Score),
			Timestamp: time.Now().UTC(),
		})
	}

	return view(e), &ports.AssessmentResult{Score: outcome.Score, Redirect: outcome.Redirect}, nil
}

func (s *AssessmentService) Back(ctx context.Context, tabID string) (*ports.AssessmentView, error) {
	e, err := s.load(ctx, tabID)
	if err != nil {
		return nil, err
	}
	e.Retreat()
	if err := s.save(ctx, tabID, e); err != nil {
		return nil, err
	}
	return view(e), nil
}

// Restart discards the walk and the completion marker of the tab.
func (s *AssessmentService) Restart(ctx context.Context, tabID string) error {
	if err := s.tabs.ClearEngine(ctx, tabID); err != nil {
		return fmt.Errorf("clear engine: %w", err)
	}
	if err := s.tabs.ClearCompletion(ctx, tabID); err != nil {
		return fmt.Errorf("clear completion: %w", err)
	}
	return nil
}

func (s *AssessmentService) Completion(ctx context.Context, tabID string) (ports.Completion, error) {
	return s.tabs.Completion(ctx, tabID)
}

func (s *AssessmentService) load(ctx context.Context, tabID string) (*Engine, error) {
	state, err := s.tabs.Engine(ctx, tabID)
	if err != nil {
		return nil, fmt.Errorf("load engine: %w", err)
	}
	if state == nil {
		return NewEngine(), nil
	}
	return RestoreEngine(state.CurrentIndex, state.Answers), nil
}

func (s *AssessmentService) save(ctx context.Context, tabID string, e *Engine) error {
	err := s.tabs.SaveEngine(ctx, tabID, &ports.EngineState{
		CurrentIndex: e.CurrentIndex(),
		Answers:      e.Answers(),
	})
	if err != nil {
		return fmt.Errorf("save engine: %w", err)
	}
	return nil
}

func view(e *Engine) *ports.AssessmentView {
	selected, _ := e.Selected()
	return &ports.AssessmentView{
		Question:     e.Question(),
		CurrentIndex: e.CurrentIndex(),
		Total:        e.Total(),
		Progress:     e.Progress(),
		Selected:     selected,
		Answered:     len(e.answers),
	}
}
