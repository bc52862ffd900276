package monitor

import "project-monitor-bot/internal/model"

// QueryInput is the input for a free-text monitoring question.
type QueryInput struct {
	Query string // Natural language question from the user
}

// QueryOutput is the result of AnswerQuery.
type QueryOutput struct {
	Answer          string // LLM-generated answer, Telegram Markdown
	WebsitesChecked int    // Number of websites included in the prompt context
	IssuesInContext int    // Number of Sentry issues included in the prompt context
}

// StatusOutput is the result of probing the monitored websites.
type StatusOutput struct {
	Statuses []model.WebsiteStatus
}

// IssuesOutput is the result of the Sentry issues fetch.
type IssuesOutput struct {
	Issues []model.SentryIssue
	Count  int
}
