package retry

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/loot-scout/loot-scout-go/src/http"
)

// Config holds retry configuration
type Config struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultConfig returns sensible defaults for the wiki and garland hosts,
// both of which rate-limit politely rather than ban.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     8 * time.Second,
	}
}

// shouldRetry determines if we should retry based on the response or error.
// Network errors, 429 and 5xx retry; everything else does not.
func shouldRetry(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp.StatusCode == 429 {
		return true
	}
	return resp.StatusCode >= 500
}

// getRetryDelay calculates the delay for the next retry
func getRetryDelay(resp *http.Response, attempt int, config Config) time.Duration {
	// Honour Retry-After on 429 responses
	if resp != nil && resp.StatusCode == 429 {
		if retryAfter := resp.Headers["Retry-After"]; retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
				delay := time.Duration(seconds) * time.Second
				if delay > config.MaxDelay {
					return config.MaxDelay
				}
				return delay
			}
		}
	}

	// Exponential backoff: initialDelay * 2^(attempt-1)
	delay := config.InitialDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay > config.MaxDelay {
			return config.MaxDelay
		}
	}
	return delay
}

// WithRetry wraps an HTTP GET call with retry logic and exponential backoff
func WithRetry(ctx context.Context, client http.HTTPClient, url string, config Config) (*http.Response, error) {
	var lastErr error
	var lastResp *http.Response

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if attempt > 1 {
			slog.Warn("retrying request", "url", url, "attempt", attempt, "max_attempts", config.MaxAttempts)
		}

		resp, err := client.Get(ctx, url)

		if err == nil && resp.StatusCode == 200 {
			return resp, nil
		}

		lastResp = resp
		lastErr = err

		if !shouldRetry(resp, err) {
			// 4xx other than 429: the caller decides what a 404 page means
			if err == nil {
				return resp, nil
			}
			return nil, err
		}

		if attempt == config.MaxAttempts {
			break
		}

		delay := getRetryDelay(resp, attempt, config)
		slog.Info("backing off before retry", "url", url, "delay", delay, "reason", getRetryReason(resp, err))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("request failed after %d attempts: %w", config.MaxAttempts, lastErr)
	}

	// Return the last response (non-200 status)
	return lastResp, nil
}

// getRetryReason returns a human-readable reason for the retry
func getRetryReason(resp *http.Response, err error) string {
	if err != nil {
		return "network_error"
	}
	if resp.StatusCode == 429 {
		return "rate_limited"
	}
	if resp.StatusCode >= 500 {
		return "server_error"
	}
	return "unknown"
}
