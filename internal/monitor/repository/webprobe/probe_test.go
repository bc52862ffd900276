package webprobe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-monitor-bot/internal/monitor/repository/webprobe"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Info(ctx context.Context, args ...interface{})                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (noopLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (noopLogger) Error(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func TestCheckAll(t *testing.T) {
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer okSrv.Close()

	errSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer errSrv.Close()

	ctx := context.Background()

	t.Run("MixedResults", func(t *testing.T) {
		// unreachable last: results must keep configuration order
		websites := []string{okSrv.URL, errSrv.URL, "http://localhost:59999"}
		repo := webprobe.New(websites, 2*time.Second, noopLogger{})

		statuses, err := repo.CheckAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(statuses) != 3 {
			t.Fatalf("expected 3 statuses, got %d", len(statuses))
		}

		if !statuses[0].Accessible || statuses[0].StatusCode != http.StatusOK {
			t.Errorf("expected first site accessible with 200, got %+v", statuses[0])
		}
		if statuses[1].Accessible || statuses[1].StatusCode != http.StatusServiceUnavailable {
			t.Errorf("expected second site inaccessible with 503, got %+v", statuses[1])
		}
		if statuses[2].Accessible || statuses[2].Error == "" {
			t.Errorf("expected third site unreachable with error message, got %+v", statuses[2])
		}

		for i, url := range websites {
			if statuses[i].URL != url {
				t.Errorf("status %d out of order: expected %s, got %s", i, url, statuses[i].URL)
			}
		}
	})

	t.Run("NoWebsites", func(t *testing.T) {
		repo := webprobe.New(nil, time.Second, noopLogger{})

		statuses, err := repo.CheckAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(statuses) != 0 {
			t.Errorf("expected no statuses, got %+v", statuses)
		}
	})

	t.Run("TimeoutReportedAsInaccessible", func(t *testing.T) {
		slowSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer slowSrv.Close()

		repo := webprobe.New([]string{slowSrv.URL}, 50*time.Millisecond, noopLogger{})

		statuses, err := repo.CheckAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if statuses[0].Accessible || statuses[0].Error == "" {
			t.Errorf("expected timeout to be reported as inaccessible, got %+v", statuses[0])
		}
	})
}
