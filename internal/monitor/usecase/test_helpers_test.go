package usecase_test

import (
	"context"
	"sync/atomic"
	"time"

	"project-monitor-bot/internal/cache"
	"project-monitor-bot/internal/model"
	"project-monitor-bot/internal/monitor"
	"project-monitor-bot/internal/monitor/usecase"
	"project-monitor-bot/internal/session"
	"project-monitor-bot/pkg/anthropic"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockLLM struct {
	response   string
	err        error
	calls      atomic.Int64
	lastPrompt string
}

func (m *mockLLM) CreateMessage(ctx context.Context, system string, messages []anthropic.Message) (string, error) {
	m.calls.Add(1)
	if len(messages) > 0 {
		m.lastPrompt = messages[len(messages)-1].Content
	}
	return m.response, m.err
}

type mockIssueRepo struct {
	issues []model.SentryIssue
	err    error
	delay  time.Duration
	calls  atomic.Int64
}

func (m *mockIssueRepo) ListRecentIssues(ctx context.Context) ([]model.SentryIssue, error) {
	m.calls.Add(1)
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return m.issues, m.err
}

type mockStatusRepo struct {
	statuses []model.WebsiteStatus
	err      error
	calls    atomic.Int64
}

func (m *mockStatusRepo) CheckAll(ctx context.Context) ([]model.WebsiteStatus, error) {
	m.calls.Add(1)
	return m.statuses, m.err
}

// testEnv bundles the usecase under test with its mocks.
type testEnv struct {
	llm        *mockLLM
	issueRepo  *mockIssueRepo
	statusRepo *mockStatusRepo
	history    *session.History
	uc         monitor.UseCase
}

func newTestEnv(cacheTTL time.Duration) *testEnv {
	llm := &mockLLM{response: "All systems nominal ✅"}
	issueRepo := &mockIssueRepo{issues: []model.SentryIssue{
		{ID: "1", Title: "NullPointer in checkout", Project: "shop", Level: "error", LastSeen: "2026-01-15T10:00:00Z"},
	}}
	statusRepo := &mockStatusRepo{statuses: []model.WebsiteStatus{
		{URL: "https://example.com", StatusCode: 200, Accessible: true},
	}}
	history, _ := session.New(5, time.Hour)
	issueCache, _ := cache.New[[]model.SentryIssue](cacheTTL)
	statusCache, _ := cache.New[[]model.WebsiteStatus](cacheTTL)

	uc := usecase.New(&mockLogger{}, llm, issueRepo, statusRepo,
		issueCache, statusCache, history, []string{"shop", "api"})

	return &testEnv{
		llm:        llm,
		issueRepo:  issueRepo,
		statusRepo: statusRepo,
		history:    history,
		uc:         uc,
	}
}
