package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"project-monitor-bot/internal/cache"
)

func TestNew_InvalidTTL(t *testing.T) {
	if _, err := cache.New[string](0); err == nil {
		t.Error("expected error for zero ttl")
	}
	if _, err := cache.New[string](-time.Minute); err == nil {
		t.Error("expected error for negative ttl")
	}
}

func TestSetGet(t *testing.T) {
	c, err := cache.New[string](5 * time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit immediately after Set")
	}
	if got != "v" {
		t.Errorf("expected %q, got %q", "v", got)
	}
}

func TestGet_Miss(t *testing.T) {
	c, _ := cache.New[int](time.Minute)
	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestSet_Overwrites(t *testing.T) {
	c, _ := cache.New[string](time.Minute)
	c.Set("k", "old")
	c.Set("k", "new")
	got, ok := c.Get("k")
	if !ok || got != "new" {
		t.Errorf("expected %q, got %q (ok=%v)", "new", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry after overwrite, got %d", c.Len())
	}
}

// ttl=5min; set at t0; get at t0+4min hits; get at t0+6min misses and frees the entry.
func TestExpiry(t *testing.T) {
	c, _ := cache.New[string](5 * time.Minute)

	t0 := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	now := t0
	c.SetNowFunc(func() time.Time { return now })

	c.Set("k", "v")

	now = t0.Add(4 * time.Minute)
	if got, ok := c.Get("k"); !ok || got != "v" {
		t.Fatalf("expected hit at t0+4min, got %q (ok=%v)", got, ok)
	}

	now = t0.Add(6 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss at t0+6min")
	}
	// Lazy eviction removed the stale entry on that read.
	if c.Len() != 0 {
		t.Errorf("expected 0 entries after expired read, got %d", c.Len())
	}
	// Subsequent reads stay absent.
	if _, ok := c.Get("k"); ok {
		t.Error("expected repeated miss after eviction")
	}
}

func TestExpiry_BoundaryInclusive(t *testing.T) {
	c, _ := cache.New[string](5 * time.Minute)

	t0 := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	now := t0
	c.SetNowFunc(func() time.Time { return now })

	c.Set("k", "v")

	// Exactly at expiresAt the entry is still present (now <= expiresAt).
	now = t0.Add(5 * time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Error("expected hit exactly at expiry boundary")
	}
}

func TestSet_RefreshesExpiry(t *testing.T) {
	c, _ := cache.New[string](5 * time.Minute)

	t0 := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	now := t0
	c.SetNowFunc(func() time.Time { return now })

	c.Set("k", "v1")
	now = t0.Add(4 * time.Minute)
	c.Set("k", "v2")

	// 4+4=8min after t0, but only 4min after the re-set.
	now = t0.Add(8 * time.Minute)
	if got, ok := c.Get("k"); !ok || got != "v2" {
		t.Errorf("expected re-set entry to be live, got %q (ok=%v)", got, ok)
	}
}

func TestClear_Idempotent(t *testing.T) {
	c, _ := cache.New[string](time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d entries", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Error("expected Clear to be idempotent")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after Clear")
	}
}

func TestStructValues(t *testing.T) {
	type payload struct {
		Name  string
		Count int
	}
	c, _ := cache.New[[]payload](time.Minute)
	c.Set("list", []payload{{Name: "x", Count: 3}})

	got, ok := c.Get("list")
	if !ok || len(got) != 1 || got[0].Name != "x" {
		t.Errorf("unexpected payload: %+v (ok=%v)", got, ok)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c, _ := cache.New[int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%10)
			c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if c.Len() != 10 {
		t.Errorf("expected 10 distinct keys, got %d", c.Len())
	}
}
