package llm

import (
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// ErrQuotaExceeded signals that the AI call budget is spent for now.
var ErrQuotaExceeded = errors.New("ai service quota exceeded")

// Quota bounds how many upstream AI calls the process starts per minute.
// A nil Quota allows everything.
type Quota struct {
	limiter *rate.Limiter
}

// NewQuota returns a Quota admitting perMinute calls with the given burst.
// perMinute <= 0 disables the guard.
func NewQuota(perMinute, burst int) *Quota {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Quota{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)}
}

// Take consumes one call from the budget or returns ErrQuotaExceeded.
func (q *Quota) Take() error {
	if q == nil || q.limiter == nil {
		return nil
	}
	if !q.limiter.Allow() {
		return ErrQuotaExceeded
	}
	return nil
}
