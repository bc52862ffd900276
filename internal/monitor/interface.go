package monitor

import (
	"context"

	"project-monitor-bot/internal/model"
)

// UseCase defines the business logic interface for the monitoring domain.
type UseCase interface {
	// AnswerQuery aggregates live status signals, asks the LLM, and records the
	// exchange in the user's conversation history.
	AnswerQuery(ctx context.Context, sc model.Scope, input QueryInput) (QueryOutput, error)

	// Status probes the monitored websites (cached).
	Status(ctx context.Context) (StatusOutput, error)

	// Issues fetches the latest Sentry issues across configured projects (cached).
	Issues(ctx context.Context) (IssuesOutput, error)

	// ResetHistory clears the user's conversation history.
	ResetHistory(ctx context.Context, sc model.Scope)
}
