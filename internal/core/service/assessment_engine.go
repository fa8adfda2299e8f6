package service

import (
	"fmt"

	"github.com/tradeready/portal/internal/core/domain"
)

// Engine walks a user through the question catalog one question at a time.
// The zero value is not usable; use NewEngine or RestoreEngine.
type Engine struct {
	current int
	answers domain.AnswerSet
	total   int
}

// Outcome is produced when the last question is passed.
type Outcome struct {
	Score    int
	Redirect string
}

func NewEngine() *Engine {
	return &Engine{answers: make(domain.AnswerSet), total: domain.QuestionCount}
}

// RestoreEngine rebuilds an engine from a saved position and answers. The
// index is clamped into the catalog range.
func RestoreEngine(current int, answers domain.AnswerSet) *Engine {
	e := NewEngine()
	if answers != nil {
		e.answers = answers.Clone()
	}
	switch {
	case current < 0:
		current = 0
	case current >= e.total:
		current = e.total - 1
	}
	e.current = current
	return e
}

func (e *Engine) CurrentIndex() int { return e.current }

func (e *Engine) Total() int { return e.total }

// Answers returns a copy of the recorded answers.
func (e *Engine) Answers() domain.AnswerSet { return e.answers.Clone() }

// Question returns the question at the current index.
func (e *Engine) Question() domain.Question {
	q, _ := domain.QuestionAt(e.current)
	return q
}

// Selected returns the recorded answer for the current question, if any.
func (e *Engine) Selected() (string, bool) {
	label, ok := e.answers[e.Question().ID]
	return label, ok
}

// RecordAnswer sets the answer of the current question, replacing any prior
// answer. The label is not checked against the question's options.
func (e *Engine) RecordAnswer(label string) {
	e.answers[e.Question().ID] = label
}

// Advance moves to the next question. On the last question it finalizes the
// assessment and returns the outcome.
func (e *Engine) Advance() (*Outcome, error) {
	if _, ok := e.Selected(); !ok {
		return nil, domain.ErrAnswerRequired
	}
	if e.current == e.total-1 {
		score := domain.Score(e.answers)
		return &Outcome{
			Score:    score,
			Redirect: fmt.Sprintf("/results?score=%d", score),
		}, nil
	}
	e.current++
	return nil, nil
}

// Retreat steps back one question. Answers are kept.
func (e *Engine) Retreat() {
	if e.current > 0 {
		e.current--
	}
}

// Progress is the fraction shown in the progress bar: (index+1)/N.
func (e *Engine) Progress() float64 {
	return float64(e.current+1) / float64(e.total)
}
