package repository

import (
	"context"

	"project-monitor-bot/internal/model"
)

// IssueRepository fetches recent issues from the issue tracker.
type IssueRepository interface {
	// ListRecentIssues returns the latest issues across all configured
	// projects, newest first.
	ListRecentIssues(ctx context.Context) ([]model.SentryIssue, error)
}

// StatusRepository probes the monitored websites.
type StatusRepository interface {
	// CheckAll probes every monitored website and returns one status record
	// per site. A failed probe is a status record, not an error.
	CheckAll(ctx context.Context) ([]model.WebsiteStatus, error)
}
