package daemon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/yllada/bitmask-shell/common"
)

// countingWaiter records every existence check and skips real sleeps.
func countingWaiter(path string, attempts int, appearOn int) (*TokenWaiter, *int, *int) {
	checks, sleeps := 0, 0
	w := NewTokenWaiter(path, attempts, time.Hour)
	w.exists = func(p string) bool {
		checks++
		if appearOn > 0 && checks == appearOn {
			if err := os.WriteFile(p, []byte("  secret-token \n"), 0600); err != nil {
				panic(err)
			}
		}
		return common.FileExists(p)
	}
	w.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		return nil
	}
	return w, &checks, &sleeps
}

func TestTokenWaiter_GivesUpAfterExactlyNAttempts(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "authtoken")
			w, checks, sleeps := countingWaiter(path, n, 0)

			_, err := w.Wait(context.Background())
			if !errors.Is(err, common.ErrNoAuthToken) {
				t.Fatalf("Wait() error = %v, want ErrNoAuthToken", err)
			}
			if *checks != n {
				t.Errorf("checks = %d, want %d", *checks, n)
			}
			if *sleeps != n-1 {
				t.Errorf("sleeps = %d, want %d", *sleeps, n-1)
			}
		})
	}
}

func TestTokenWaiter_StopsOnAppearance(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		appearOn int
	}{
		{"first", 20, 1},
		{"middle", 20, 7},
		{"last", 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "authtoken")
			w, checks, _ := countingWaiter(path, tt.attempts, tt.appearOn)

			token, err := w.Wait(context.Background())
			if err != nil {
				t.Fatalf("Wait() error = %v", err)
			}
			if token != "secret-token" {
				t.Errorf("Wait() = %q, want %q", token, "secret-token")
			}
			if *checks != tt.appearOn {
				t.Errorf("checks = %d, want %d", *checks, tt.appearOn)
			}
		})
	}
}

func TestWaitForToken_TrimsNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authtoken")
	if err := os.WriteFile(path, []byte("abc123\n"), 0600); err != nil {
		t.Fatal(err)
	}

	token, err := WaitForToken(context.Background(), path, 20, time.Millisecond)
	if err != nil {
		t.Fatalf("WaitForToken() error = %v", err)
	}
	if token != "abc123" {
		t.Errorf("WaitForToken() = %q, want %q", token, "abc123")
	}
}

func TestWaitForToken_FileWrittenLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authtoken")
	go func() {
		time.Sleep(30 * time.Millisecond)
		os.WriteFile(path, []byte("late\n"), 0600)
	}()

	token, err := WaitForToken(context.Background(), path, 100, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitForToken() error = %v", err)
	}
	if token != "late" {
		t.Errorf("WaitForToken() = %q, want %q", token, "late")
	}
}

func TestWaitForToken_Cancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authtoken")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WaitForToken(ctx, path, 20, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("WaitForToken() error = %v, want context.Canceled", err)
	}
}

func TestClearToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authtoken")

	if err := ClearToken(path); err != nil {
		t.Errorf("ClearToken() on missing file error = %v", err)
	}

	if err := os.WriteFile(path, []byte("stale"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := ClearToken(path); err != nil {
		t.Fatalf("ClearToken() error = %v", err)
	}
	if common.FileExists(path) {
		t.Error("ClearToken() should remove the file")
	}
}
