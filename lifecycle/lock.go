package lifecycle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/yllada/bitmask-shell/common"
)

// AcquireInstanceLock takes an exclusive lock on path so that a second
// shell does not clear the token of a running one. Call Unlock on exit.
func AcquireInstanceLock(path string) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, common.ErrAlreadyRunning
	}
	return lock, nil
}
