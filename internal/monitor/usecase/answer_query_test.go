package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"project-monitor-bot/internal/model"
	"project-monitor-bot/internal/monitor"
)

func TestAnswerQuery_EmptyQuery(t *testing.T) {
	env := newTestEnv(5 * time.Minute)

	_, err := env.uc.AnswerQuery(context.Background(), model.Scope{UserID: 1}, monitor.QueryInput{})
	if !errors.Is(err, monitor.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestAnswerQuery_Success(t *testing.T) {
	env := newTestEnv(5 * time.Minute)
	sc := model.Scope{UserID: 42, Username: "ops"}

	out, err := env.uc.AnswerQuery(context.Background(), sc, monitor.QueryInput{Query: "is the shop up?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Answer != "All systems nominal ✅" {
		t.Errorf("unexpected answer: %q", out.Answer)
	}
	if out.WebsitesChecked != 1 {
		t.Errorf("expected 1 website in context, got %d", out.WebsitesChecked)
	}
	if out.IssuesInContext != 1 {
		t.Errorf("expected 1 issue in context, got %d", out.IssuesInContext)
	}

	// The exchange was recorded.
	got := env.history.GetHistory(42)
	if len(got) != 1 {
		t.Fatalf("expected 1 exchange in history, got %d", len(got))
	}
	if got[0].Query != "is the shop up?" || got[0].Response != "All systems nominal ✅" {
		t.Errorf("unexpected recorded exchange: %+v", got[0])
	}
}

func TestAnswerQuery_PromptIncludesSignalsAndHistory(t *testing.T) {
	env := newTestEnv(5 * time.Minute)
	sc := model.Scope{UserID: 7}

	env.history.AddMessage(7, "earlier question", "earlier answer")

	if _, err := env.uc.AnswerQuery(context.Background(), sc, monitor.QueryInput{Query: "anything broken?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := env.llm.lastPrompt
	for _, want := range []string{
		"anything broken?",
		"https://example.com",
		"NullPointer in checkout",
		"shop, api",
		"Previous Conversation",
		"earlier question",
		"earlier answer",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAnswerQuery_LLMFailureNotRecorded(t *testing.T) {
	env := newTestEnv(5 * time.Minute)
	env.llm.err = errors.New("model overloaded")
	sc := model.Scope{UserID: 5}

	_, err := env.uc.AnswerQuery(context.Background(), sc, monitor.QueryInput{Query: "status?"})
	if err == nil {
		t.Fatal("expected error from failed LLM call")
	}

	// A failed model call must not be appended to history.
	if got := env.history.GetHistory(5); len(got) != 0 {
		t.Errorf("expected empty history after LLM failure, got %d exchanges", len(got))
	}
}

func TestAnswerQuery_EmptyLLMResponse(t *testing.T) {
	env := newTestEnv(5 * time.Minute)
	env.llm.response = ""

	_, err := env.uc.AnswerQuery(context.Background(), model.Scope{UserID: 5}, monitor.QueryInput{Query: "status?"})
	if !errors.Is(err, monitor.ErrNoResponse) {
		t.Errorf("expected ErrNoResponse, got %v", err)
	}
}

func TestAnswerQuery_DegradedUpstreams(t *testing.T) {
	env := newTestEnv(5 * time.Minute)
	env.issueRepo.issues = nil
	env.issueRepo.err = errors.New("sentry down")
	env.statusRepo.statuses = nil
	env.statusRepo.err = errors.New("probe broke")

	out, err := env.uc.AnswerQuery(context.Background(), model.Scope{UserID: 3}, monitor.QueryInput{Query: "what's up?"})
	if err != nil {
		t.Fatalf("expected degraded answer, got error: %v", err)
	}
	if out.WebsitesChecked != 0 || out.IssuesInContext != 0 {
		t.Errorf("expected empty context counts, got %+v", out)
	}
	if !strings.Contains(env.llm.lastPrompt, "No issues found") {
		t.Errorf("prompt should mark issue feed as empty:\n%s", env.llm.lastPrompt)
	}
}

func TestAnswerQuery_MaintainsHistoryWindow(t *testing.T) {
	env := newTestEnv(5 * time.Minute)
	sc := model.Scope{UserID: 9}

	for i := 0; i < 8; i++ {
		if _, err := env.uc.AnswerQuery(context.Background(), sc, monitor.QueryInput{Query: "q" + string(rune('0'+i))}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// History bounded to 5 per user (session default in newTestEnv).
	if got := env.history.GetHistory(9); len(got) != 5 {
		t.Errorf("expected history capped at 5, got %d", len(got))
	}
}

func TestResetHistory(t *testing.T) {
	env := newTestEnv(5 * time.Minute)
	sc := model.Scope{UserID: 11}
	env.history.AddMessage(11, "q", "r")

	env.uc.ResetHistory(context.Background(), sc)

	if got := env.history.GetHistory(11); len(got) != 0 {
		t.Errorf("expected empty history after reset, got %d", len(got))
	}
}
