package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

type stubAssessment struct {
	ports.AssessmentService
	completion ports.Completion
}

func (s stubAssessment) Completion(context.Context, string) (ports.Completion, error) {
	return s.completion, nil
}

func TestResultsHandler_InvalidScore(t *testing.T) {
	h := NewResultsHandler(stubAssessment{})
	for _, q := range []string{"", "abc", "-1", "101", "7.5"} {
		_, err := serve(newEcho(), h.Get, http.MethodGet, "/api/results?score="+q, "")
		if !errors.Is(err, domain.ErrInvalidScore) {
			t.Fatalf("score=%q: expected ErrInvalidScore, got %v", q, err)
		}
	}
}

func TestResultsHandler_Derivation(t *testing.T) {
	tests := []struct {
		name         string
		score        string
		complete     bool
		wantStatus   domain.ReadinessStatus
		wantRegister bool
	}{
		{name: "passed and completed", score: "75", complete: true, wantStatus: domain.StatusPassed, wantRegister: true},
		{name: "passed without completion", score: "75", complete: false, wantStatus: domain.StatusPassed, wantRegister: false},
		{name: "near miss", score: "67", complete: true, wantStatus: domain.StatusNearMiss, wantRegister: false},
		{name: "failed", score: "0", complete: true, wantStatus: domain.StatusFailed, wantRegister: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewResultsHandler(stubAssessment{completion: ports.Completion{Complete: tt.complete, Score: 100}})
			rec, err := serve(newEcho(), h.Get, http.MethodGet, "/api/results?score="+tt.score, "")
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			var resp resultsResponse
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp.Status != tt.wantStatus || resp.CanRegister != tt.wantRegister {
				t.Fatalf("unexpected response %+v", resp)
			}
			if len(resp.Checklist) != 12 || resp.Title == "" || resp.Icon == "" {
				t.Fatalf("expected full detail and checklist, got %+v", resp)
			}
		})
	}
}
