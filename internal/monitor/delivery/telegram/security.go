package telegram

import (
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	SecretToken     string // Shared secret sent by Telegram in X-Telegram-Bot-Api-Secret-Token
	RateLimitPerMin int    // Max messages per minute per chat
}

// SecurityValidator validates incoming webhook requests.
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
}

// ValidateSecretToken verifies the webhook secret header set via setWebhook.
// An empty configured secret disables the check.
func (v *SecurityValidator) ValidateSecretToken(token string) error {
	if v.config.SecretToken == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(v.config.SecretToken)) != 1 {
		return ErrInvalidSecretToken
	}
	return nil
}

// CheckRateLimit enforces the per-chat message rate limit.
func (v *SecurityValidator) CheckRateLimit(chatID int64) error {
	return v.rateLimiter.Allow(chatID)
}

// rateLimiter is a per-chat token-bucket limiter with auto-cleanup of idle chats.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[int64, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[int64, *rate.Limiter](
			1000,          // Max 1000 active chats
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(chatID int64) error {
	// Get-then-add must be atomic: two concurrent first messages for one chat
	// would otherwise each create a bucket and over-admit the initial burst.
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(chatID)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(chatID, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for chat %d", chatID)
	}
	return nil
}
