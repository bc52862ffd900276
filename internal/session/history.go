// Package session keeps a bounded, time-windowed conversation history per user.
// It backs the prompt context for LLM calls: the last maxMessages exchanges,
// none older than the expiry window.
package session

import (
	"errors"
	"sync"
	"time"

	"project-monitor-bot/internal/model"
)

// Configuration errors surfaced once at construction.
var (
	ErrInvalidMaxMessages  = errors.New("session: max messages must be positive")
	ErrInvalidExpiryWindow = errors.New("session: expiry window must be positive")
)

// History maps a Telegram user ID to their recent exchanges.
// Oldest exchanges are evicted first once the per-user capacity is reached;
// exchanges older than the expiry window are discarded on every access.
// Safe for concurrent use.
type History struct {
	mu           sync.Mutex
	sessions     map[int64][]model.Exchange
	maxMessages  int
	expiryWindow time.Duration
	now          func() time.Time
}

// New creates a History bounded to maxMessages exchanges per user,
// each valid for expiryWindow after creation.
func New(maxMessages int, expiryWindow time.Duration) (*History, error) {
	if maxMessages <= 0 {
		return nil, ErrInvalidMaxMessages
	}
	if expiryWindow <= 0 {
		return nil, ErrInvalidExpiryWindow
	}
	return &History{
		sessions:     make(map[int64][]model.Exchange),
		maxMessages:  maxMessages,
		expiryWindow: expiryWindow,
		now:          time.Now,
	}, nil
}

// SetNowFunc overrides the clock. Tests only.
func (h *History) SetNowFunc(now func() time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = now
}

// prune drops expired exchanges for userID and removes the user entirely
// when nothing valid remains. Caller must hold h.mu.
func (h *History) prune(userID int64) {
	exchanges, ok := h.sessions[userID]
	if !ok {
		return
	}

	cutoff := h.now().Add(-h.expiryWindow)
	// Exchanges are in arrival order, so the first valid one marks the survivors.
	firstValid := len(exchanges)
	for i, ex := range exchanges {
		if !ex.Timestamp.Before(cutoff) {
			firstValid = i
			break
		}
	}

	if firstValid == len(exchanges) {
		delete(h.sessions, userID)
		return
	}
	if firstValid > 0 {
		h.sessions[userID] = append(exchanges[:0], exchanges[firstValid:]...)
	}
}

// AddMessage appends a (query, response) exchange for userID, stamped now.
// Expired exchanges are pruned first; if the buffer then exceeds capacity,
// the oldest exchanges are dropped. One atomic step per call.
func (h *History) AddMessage(userID int64, query, response string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.prune(userID)

	ex := model.Exchange{
		Query:     query,
		Response:  response,
		Timestamp: h.now(),
	}

	exchanges := h.sessions[userID]
	if len(exchanges) == h.maxMessages {
		// At capacity: shift in place so the buffer never grows past maxMessages.
		copy(exchanges, exchanges[1:])
		exchanges[len(exchanges)-1] = ex
	} else {
		exchanges = append(exchanges, ex)
	}
	h.sessions[userID] = exchanges
}

// GetHistory returns a snapshot of the user's valid exchanges, oldest first.
// The returned slice is a copy; later writes never mutate it.
func (h *History) GetHistory(userID int64) []model.Exchange {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.prune(userID)

	exchanges := h.sessions[userID]
	if len(exchanges) == 0 {
		return []model.Exchange{}
	}
	out := make([]model.Exchange, len(exchanges))
	copy(out, exchanges)
	return out
}

// ClearHistory removes the user's history entirely. Idempotent.
func (h *History) ClearHistory(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.sessions, userID)
}

// CleanupAll prunes every known user, dropping users left with no valid
// exchanges. Meant to be called opportunistically (once per incoming
// message); there is no background scheduler.
func (h *History) CleanupAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID := range h.sessions {
		h.prune(userID)
	}
}

// Users returns the number of users with stored history.
func (h *History) Users() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.sessions)
}

// Len returns the number of valid exchanges stored for userID.
func (h *History) Len(userID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.prune(userID)
	return len(h.sessions[userID])
}
