// Package webprobe checks website reachability with plain HTTP GETs.
package webprobe

import (
	"context"
	"net/http"
	"sync"
	"time"

	"project-monitor-bot/internal/model"
	"project-monitor-bot/internal/monitor/repository"
	pkgLog "project-monitor-bot/pkg/log"
)

// DefaultTimeout bounds each probe request.
const DefaultTimeout = 10 * time.Second

type statusRepository struct {
	websites   []string
	httpClient *http.Client
	l          pkgLog.Logger
}

// New creates a StatusRepository probing the given websites.
func New(websites []string, timeout time.Duration, l pkgLog.Logger) repository.StatusRepository {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &statusRepository{
		websites:   websites,
		httpClient: &http.Client{Timeout: timeout},
		l:          l,
	}
}

// CheckAll probes every website concurrently and returns statuses in
// configuration order. Probe failures become status records with
// Accessible=false, never errors.
func (r *statusRepository) CheckAll(ctx context.Context) ([]model.WebsiteStatus, error) {
	statuses := make([]model.WebsiteStatus, len(r.websites))

	var wg sync.WaitGroup
	for i, url := range r.websites {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			statuses[i] = r.check(ctx, url)
		}(i, url)
	}
	wg.Wait()

	return statuses, nil
}

func (r *statusRepository) check(ctx context.Context, url string) model.WebsiteStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.WebsiteStatus{URL: url, Accessible: false, Error: err.Error()}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.l.Warnf(ctx, "webprobe: %s unreachable: %v", url, err)
		return model.WebsiteStatus{URL: url, Accessible: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	return model.WebsiteStatus{
		URL:        url,
		StatusCode: resp.StatusCode,
		Accessible: resp.StatusCode == http.StatusOK,
	}
}
