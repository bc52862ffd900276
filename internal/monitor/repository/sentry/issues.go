package sentry

import (
	"context"
	"fmt"
	"sort"

	"project-monitor-bot/internal/model"
	"project-monitor-bot/internal/monitor/repository"
	pkgLog "project-monitor-bot/pkg/log"
)

type issueRepository struct {
	client   *Client
	org      string
	projects []string
	l        pkgLog.Logger
}

// New creates an IssueRepository that aggregates issues across the configured
// Sentry projects.
func New(client *Client, org string, projects []string, l pkgLog.Logger) repository.IssueRepository {
	return &issueRepository{
		client:   client,
		org:      org,
		projects: projects,
		l:        l,
	}
}

// ListRecentIssues fetches issues per project, tags each with its project
// slug, and sorts the merged list by last-seen time, newest first. A failing
// project is logged and skipped; the call fails only when every project fails.
func (r *issueRepository) ListRecentIssues(ctx context.Context) ([]model.SentryIssue, error) {
	if len(r.projects) == 0 {
		r.l.Warnf(ctx, "sentry repository: no projects configured")
		return []model.SentryIssue{}, nil
	}

	all := make([]model.SentryIssue, 0)
	var lastErr error

	for _, project := range r.projects {
		issues, err := r.client.ListProjectIssues(ctx, r.org, project)
		if err != nil {
			r.l.Errorf(ctx, "sentry repository: failed to fetch issues for project %s: %v", project, err)
			lastErr = err
			continue
		}
		for _, issue := range issues {
			all = append(all, model.SentryIssue{
				ID:        issue.ID,
				Title:     issue.Title,
				Culprit:   issue.Culprit,
				Project:   project,
				Level:     issue.Level,
				Count:     issue.Count,
				Permalink: issue.Permalink,
				LastSeen:  issue.LastSeen,
			})
		}
	}

	if len(all) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all sentry projects failed: %w", lastErr)
	}

	// RFC3339 timestamps sort lexicographically.
	sort.Slice(all, func(i, j int) bool {
		return all[i].LastSeen > all[j].LastSeen
	})

	return all, nil
}
