package usecase

import (
	"context"

	"golang.org/x/sync/singleflight"

	"project-monitor-bot/internal/cache"
	"project-monitor-bot/internal/model"
	"project-monitor-bot/internal/monitor/repository"
	"project-monitor-bot/internal/session"
	"project-monitor-bot/pkg/anthropic"
	pkgLog "project-monitor-bot/pkg/log"
)

// LLM is the language-model call the pipeline needs. Implemented by
// *anthropic.Client; an interface for better testability.
type LLM interface {
	CreateMessage(ctx context.Context, system string, messages []anthropic.Message) (string, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	llm         LLM
	issueRepo   repository.IssueRepository
	statusRepo  repository.StatusRepository
	issueCache  *cache.Cache[[]model.SentryIssue]
	statusCache *cache.Cache[[]model.WebsiteStatus]
	history     *session.History
	projects    []string

	// fetchGroup collapses concurrent upstream fetches for the same cache key
	// into a single call.
	fetchGroup singleflight.Group
}

// New creates a new monitor UseCase instance.
func New(
	l pkgLog.Logger,
	llm LLM,
	issueRepo repository.IssueRepository,
	statusRepo repository.StatusRepository,
	issueCache *cache.Cache[[]model.SentryIssue],
	statusCache *cache.Cache[[]model.WebsiteStatus],
	history *session.History,
	projects []string,
) *implUseCase {
	return &implUseCase{
		l:           l,
		llm:         llm,
		issueRepo:   issueRepo,
		statusRepo:  statusRepo,
		issueCache:  issueCache,
		statusCache: statusCache,
		history:     history,
		projects:    projects,
	}
}
