package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/five82/salesgrid/internal/growth"
)

const (
	defaultRetryInterval = time.Second
	maxBackoff           = 30 * time.Second
)

// retryFetcher retries network failures with exponential backoff. Errors the
// server reported are returned at once.
type retryFetcher struct {
	next     growth.Fetcher
	attempts int
	interval time.Duration
}

var _ growth.Fetcher = (*retryFetcher)(nil)

func newRetryFetcher(next growth.Fetcher, attempts int) *retryFetcher {
	return &retryFetcher{next: next, attempts: attempts, interval: defaultRetryInterval}
}

func (r *retryFetcher) FetchGrowthData(ctx context.Context) (*growth.Response, error) {
	attempts := max(r.attempts, 1)
	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			wait := calculateBackoff(attempt-1, r.interval)
			log.Printf("growth fetch failed (attempt %d/%d), retrying in %s: %v", attempt, attempts, wait, lastErr)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
		resp, err := r.next.FetchGrowthData(ctx)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !errors.Is(err, growth.ErrNetwork) {
			return nil, err
		}
	}
	return nil, lastErr
}

// calculateBackoff doubles base per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
