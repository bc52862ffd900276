package usecase

import (
	"context"
	"fmt"

	"project-monitor-bot/internal/model"
	"project-monitor-bot/internal/monitor"
)

// Cache keys for upstream results. The key space is small and repeatedly
// polled, which is what makes lazy cache eviction acceptable.
const (
	cacheKeyIssues   = "sentry_issues"
	cacheKeyStatuses = "website_status"
)

// Status probes the monitored websites, serving from cache when fresh.
func (uc *implUseCase) Status(ctx context.Context) (monitor.StatusOutput, error) {
	statuses, err := uc.fetchStatuses(ctx)
	if err != nil {
		return monitor.StatusOutput{}, err
	}
	return monitor.StatusOutput{Statuses: statuses}, nil
}

// Issues returns the latest Sentry issues, serving from cache when fresh.
func (uc *implUseCase) Issues(ctx context.Context) (monitor.IssuesOutput, error) {
	issues, err := uc.fetchIssues(ctx)
	if err != nil {
		return monitor.IssuesOutput{}, err
	}
	return monitor.IssuesOutput{Issues: issues, Count: len(issues)}, nil
}

// fetchStatuses returns website statuses from cache, probing on a miss.
// Concurrent misses are collapsed into one probe run.
func (uc *implUseCase) fetchStatuses(ctx context.Context) ([]model.WebsiteStatus, error) {
	if cached, ok := uc.statusCache.Get(cacheKeyStatuses); ok {
		uc.l.Infof(ctx, "monitor usecase: using cached website statuses")
		return cached, nil
	}

	v, err, _ := uc.fetchGroup.Do(cacheKeyStatuses, func() (interface{}, error) {
		statuses, err := uc.statusRepo.CheckAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to probe websites: %w", err)
		}
		uc.statusCache.Set(cacheKeyStatuses, statuses)
		uc.l.Infof(ctx, "monitor usecase: cached fresh website statuses (%d sites)", len(statuses))
		return statuses, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.WebsiteStatus), nil
}

// fetchIssues returns Sentry issues from cache, fetching on a miss.
// A failed fetch is never cached.
func (uc *implUseCase) fetchIssues(ctx context.Context) ([]model.SentryIssue, error) {
	// Issue monitoring is optional; without a repository there is nothing to fetch.
	if uc.issueRepo == nil {
		return nil, nil
	}

	if cached, ok := uc.issueCache.Get(cacheKeyIssues); ok {
		uc.l.Infof(ctx, "monitor usecase: using cached sentry issues")
		return cached, nil
	}

	v, err, _ := uc.fetchGroup.Do(cacheKeyIssues, func() (interface{}, error) {
		issues, err := uc.issueRepo.ListRecentIssues(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch sentry issues: %w", err)
		}
		uc.issueCache.Set(cacheKeyIssues, issues)
		uc.l.Infof(ctx, "monitor usecase: cached %d fresh sentry issues", len(issues))
		return issues, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.SentryIssue), nil
}
