package usecase

import (
	"context"
	"fmt"

	"project-monitor-bot/internal/model"
	"project-monitor-bot/internal/monitor"
	"project-monitor-bot/pkg/anthropic"
)

// MaxIssuesInContext bounds how many Sentry issues go into the prompt.
const MaxIssuesInContext = 5

// AnswerQuery aggregates live status signals, asks the LLM with the user's
// recent conversation as context, and records the new exchange.
func (uc *implUseCase) AnswerQuery(ctx context.Context, sc model.Scope, input monitor.QueryInput) (monitor.QueryOutput, error) {
	if input.Query == "" {
		return monitor.QueryOutput{}, monitor.ErrEmptyQuery
	}

	uc.l.Infof(ctx, "AnswerQuery: user=%d query=%q", sc.UserID, input.Query)

	// Opportunistic maintenance pass over all users; no background scheduler.
	uc.history.CleanupAll()

	statuses, err := uc.fetchStatuses(ctx)
	if err != nil {
		// Degraded context, not a fatal condition.
		uc.l.Warnf(ctx, "AnswerQuery: website probe failed: %v", err)
		statuses = nil
	}

	issues, err := uc.fetchIssues(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "AnswerQuery: sentry fetch failed: %v", err)
		issues = nil
	}

	exchanges := uc.history.GetHistory(sc.UserID)
	prompt := buildContextMessage(input.Query, statuses, issues, uc.projects, exchanges)

	answer, err := uc.llm.CreateMessage(ctx, SystemPromptMonitor, []anthropic.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		// The failed exchange must not enter history.
		return monitor.QueryOutput{}, fmt.Errorf("llm call failed: %w", err)
	}
	if answer == "" {
		return monitor.QueryOutput{}, monitor.ErrNoResponse
	}

	uc.history.AddMessage(sc.UserID, input.Query, answer)

	issuesInContext := len(issues)
	if issuesInContext > MaxIssuesInContext {
		issuesInContext = MaxIssuesInContext
	}

	return monitor.QueryOutput{
		Answer:          answer,
		WebsitesChecked: len(statuses),
		IssuesInContext: issuesInContext,
	}, nil
}

// ResetHistory clears the user's conversation history.
func (uc *implUseCase) ResetHistory(ctx context.Context, sc model.Scope) {
	uc.history.ClearHistory(sc.UserID)
	uc.l.Infof(ctx, "ResetHistory: cleared history for user %d", sc.UserID)
}
