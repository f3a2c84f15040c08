package daemon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/yllada/bitmask-shell/common"
)

// TokenWaiter polls for the readiness token bitmaskd writes once it serves requests.
type TokenWaiter struct {
	path     string
	attempts int
	interval time.Duration

	exists func(path string) bool
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewTokenWaiter returns a waiter that checks path at most attempts times,
// pausing interval between checks.
func NewTokenWaiter(path string, attempts int, interval time.Duration) *TokenWaiter {
	if attempts <= 0 {
		attempts = common.TokenAttempts
	}
	return &TokenWaiter{
		path:     path,
		attempts: attempts,
		interval: interval,
		exists:   common.FileExists,
		sleep:    sleepContext,
	}
}

// WaitForToken is a shorthand for NewTokenWaiter(path, attempts, interval).Wait(ctx).
func WaitForToken(ctx context.Context, path string, attempts int, interval time.Duration) (string, error) {
	return NewTokenWaiter(path, attempts, interval).Wait(ctx)
}

// Wait blocks until the token file exists and returns its trimmed contents.
// It gives up with ErrNoAuthToken after the last attempt misses.
func (w *TokenWaiter) Wait(ctx context.Context) (string, error) {
	for attempt := 1; ; attempt++ {
		if w.exists(w.path) {
			data, err := os.ReadFile(w.path)
			if err != nil {
				return "", fmt.Errorf("read auth token: %w", err)
			}
			common.LogDebug("Auth token found after %d attempt(s)", attempt)
			return strings.TrimSpace(string(data)), nil
		}
		if attempt >= w.attempts {
			break
		}
		if err := w.sleep(ctx, w.interval); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s did not appear after %d attempts", common.ErrNoAuthToken, w.path, w.attempts)
}

// ClearToken removes a token left over from a previous run.
func ClearToken(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale auth token: %w", err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
