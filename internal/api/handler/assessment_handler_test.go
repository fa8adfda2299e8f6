package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/service"
	"github.com/tradeready/portal/internal/infrastructure/db/memory"
)

func newAssessmentHandler() *AssessmentHandler {
	svc := service.NewAssessmentService(memory.NewTabStore(0), nil, zerolog.Nop())
	return NewAssessmentHandler(svc, &stubPortal{}, zerolog.Nop())
}

func TestAssessmentHandler_Questions(t *testing.T) {
	h := newAssessmentHandler()
	rec, err := serve(newEcho(), h.Questions, http.MethodGet, "/api/assessment/questions", "")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp questionsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != domain.QuestionCount || len(resp.Questions) != domain.QuestionCount {
		t.Fatalf("expected %d questions, got %+v", domain.QuestionCount, resp)
	}
}

func TestAssessmentHandler_AnswerValidation(t *testing.T) {
	h := newAssessmentHandler()
	_, err := serve(newEcho(), h.Answer, http.MethodPut, "/api/assessment/answer", `{}`)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Fields[0].Field != "option" {
		t.Fatalf("expected option validation error, got %v", err)
	}

	_, err = serve(newEcho(), h.Answer, http.MethodPut, "/api/assessment/answer", `{"option":"Maybe"}`)
	if !errors.Is(err, domain.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestAssessmentHandler_AnswerUsesQuestionOptions(t *testing.T) {
	h := newAssessmentHandler()
	e := newEcho()

	rec, err := serve(e, h.Current, http.MethodGet, "/api/assessment", "")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	tab := tabCookie(rec)

	// Question 1 offers "In Progress", not "Not Applicable".
	if _, err := serve(e, h.Answer, http.MethodPut, "/api/assessment/answer", `{"option":"Not Applicable"}`, tab); !errors.Is(err, domain.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption on question 1, got %v", err)
	}
	if _, err := serve(e, h.Answer, http.MethodPut, "/api/assessment/answer", `{"option":"In Progress"}`, tab); err != nil {
		t.Fatalf("question 1 accepts In Progress: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := serve(e, h.Answer, http.MethodPut, "/api/assessment/answer", `{"option":"Yes"}`, tab); err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
		if _, err := serve(e, h.Next, http.MethodPost, "/api/assessment/next", "", tab); err != nil {
			t.Fatalf("next %d: %v", i+1, err)
		}
	}

	rec, err = serve(e, h.Answer, http.MethodPut, "/api/assessment/answer", `{"option":"Not Applicable"}`, tab)
	if err != nil {
		t.Fatalf("question 3 accepts Not Applicable: %v", err)
	}
	var v assessmentResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &v)
	if v.Question.ID != 3 || v.Selected != "Not Applicable" {
		t.Fatalf("unexpected view %+v", v)
	}
}

func TestAssessmentHandler_NextRequiresAnswer(t *testing.T) {
	h := newAssessmentHandler()
	if _, err := serve(newEcho(), h.Next, http.MethodPost, "/api/assessment/next", ""); !errors.Is(err, domain.ErrAnswerRequired) {
		t.Fatalf("expected ErrAnswerRequired, got %v", err)
	}
}

func TestAssessmentHandler_FullWalk(t *testing.T) {
	h := newAssessmentHandler()
	e := newEcho()

	rec, err := serve(e, h.Current, http.MethodGet, "/api/assessment", "")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	tab := tabCookie(rec)
	if tab == "" {
		t.Fatalf("expected a tab cookie")
	}

	var last nextResponse
	for i := 0; i < domain.QuestionCount; i++ {
		if _, err := serve(e, h.Answer, http.MethodPut, "/api/assessment/answer", `{"option":"Yes"}`, tab); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		rec, err := serve(e, h.Next, http.MethodPost, "/api/assessment/next", "", tab)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		last = nextResponse{}
		_ = json.Unmarshal(rec.Body.Bytes(), &last)
	}

	if !last.Completed || last.Score == nil || *last.Score != 100 || last.Redirect != "/results?score=100" {
		t.Fatalf("unexpected final response %+v", last)
	}

	rec, _ = serve(e, h.Back, http.MethodPost, "/api/assessment/back", "", tab)
	var back assessmentResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &back)
	if back.CurrentIndex != domain.QuestionCount-2 || back.Selected != domain.OptionYes {
		t.Fatalf("back should keep answers, got %+v", back)
	}

	rec, err = serve(e, h.Restart, http.MethodDelete, "/api/assessment", "", tab)
	if err != nil || rec.Code != http.StatusNoContent {
		t.Fatalf("restart: %d %v", rec.Code, err)
	}
}
